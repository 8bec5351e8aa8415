package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/service"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// AuthHandler exposes the token endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// IssueToken godoc
// @Summary Issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.TokenRequest true "Identity claims"
// @Success 200 {object} map[string]string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req service.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	token, err := h.auth.IssueToken(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}
