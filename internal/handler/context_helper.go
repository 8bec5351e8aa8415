package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/middleware"
	"github.com/bushido-bootcamp/enroll-api/internal/models"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.ClaimsFromContext(c)
}

// requireOwnEmail enforces the per-route identity check: the caller-supplied
// email parameter must equal the authenticated token's email. On mismatch it
// writes the legacy 403 body and reports that the handler must stop. This is
// separate from role guards and applied handler by handler.
func requireOwnEmail(c *gin.Context, email string) bool {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return false
	}
	if email != claims.Email {
		response.Error(c, appErrors.ErrEmailMismatch)
		return false
	}
	return true
}
