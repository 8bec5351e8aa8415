package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// PaymentHandler exposes intent creation, checkout, and the payment history.
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent godoc
// @Summary Pre-authorize a charge
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body service.PaymentIntentRequest true "Price"
// @Success 200 {object} map[string]string
// @Router /payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req service.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	secret, err := h.payments.CreateIntent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"clientSecret": secret})
}

// Checkout godoc
// @Summary Record a payment and finalize the enrollment
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body service.CheckoutRequest true "Payment details"
// @Success 200 {object} models.CheckoutResult
// @Router /payments [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.payments.Checkout(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// History godoc
// @Summary List a student's payments
// @Tags Payments
// @Produce json
// @Param email query string true "Student email"
// @Success 200 {array} models.Payment
// @Router /payments [get]
func (h *PaymentHandler) History(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.OK(c, []models.Payment{})
		return
	}
	if !requireOwnEmail(c, email) {
		return
	}

	payments, err := h.payments.History(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payments)
}

// Export godoc
// @Summary Download a student's payment history
// @Tags Payments
// @Produce octet-stream
// @Param email query string true "Student email"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /payments/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	email := c.Query("email")
	if !requireOwnEmail(c, email) {
		return
	}

	format := c.DefaultQuery("format", "csv")
	doc, contentType, err := h.payments.ExportHistory(c.Request.Context(), email, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments.%s", ext))
	c.Data(http.StatusOK, contentType, doc)
}
