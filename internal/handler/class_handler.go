package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// ClassHandler exposes the public catalog, instructor-owned classes, and admin
// moderation endpoints.
type ClassHandler struct {
	classes *service.ClassService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// ListApproved godoc
// @Summary List approved classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes [get]
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classes.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// TopSix godoc
// @Summary List the six most enrolled classes
// @Tags Classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /classes/top-six [get]
func (h *ClassHandler) TopSix(c *gin.Context) {
	classes, err := h.classes.TopSix(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// Create godoc
// @Summary Post a new class
// @Tags Classes
// @Accept json
// @Produce json
// @Param body body service.CreateClassRequest true "Class details"
// @Success 200 {object} models.InsertResult
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	class, err := h.classes.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.InsertResult{Acknowledged: true, InsertedID: class.ID})
}

// ListOwned godoc
// @Summary List an instructor's own classes
// @Tags Classes
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} models.Class
// @Router /classes/myClasses [get]
func (h *ClassHandler) ListOwned(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.OK(c, []models.Class{})
		return
	}
	if !requireOwnEmail(c, email) {
		return
	}

	classes, err := h.classes.ListOwned(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, classes)
}

// GetOwned godoc
// @Summary Get one of an instructor's own classes
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Param email query string true "Owner email"
// @Success 200 {object} models.Class
// @Router /classes/myClasses/{id} [get]
func (h *ClassHandler) GetOwned(c *gin.Context) {
	email := c.Query("email")
	if !requireOwnEmail(c, email) {
		return
	}

	class, err := h.classes.GetOwned(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, class)
}

// UpdateDetails godoc
// @Summary Update an owned class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param email query string true "Owner email"
// @Param body body service.UpdateClassRequest true "Editable fields"
// @Success 200 {object} models.UpdateResult
// @Router /classes/myClasses/{id} [put]
func (h *ClassHandler) UpdateDetails(c *gin.Context) {
	email := c.Query("email")
	if !requireOwnEmail(c, email) {
		return
	}

	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.classes.UpdateDetails(c.Request.Context(), c.Param("id"), email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Moderate godoc
// @Summary Approve or reject a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param email query string true "Caller email"
// @Param body body service.ModerateClassRequest true "Status and feedback"
// @Success 200 {object} models.UpdateResult
// @Router /classes/manageClasses/{id} [put]
func (h *ClassHandler) Moderate(c *gin.Context) {
	if !requireOwnEmail(c, c.Query("email")) {
		return
	}

	var req service.ModerateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.classes.Moderate(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
