package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// RoleSource answers whether an email currently holds a role. Each protected
// request re-queries the stored record, so demotions apply immediately
// without waiting for token expiry.
type RoleSource interface {
	HasRole(ctx context.Context, email string, role models.StudentRole) (bool, error)
}

// RequireAdmin gates a route to students holding the admin role.
func RequireAdmin(roles RoleSource) gin.HandlerFunc {
	return requireRole(roles, models.RoleAdmin, appErrors.ErrNotAdmin)
}

// RequireInstructor gates a route to students holding the instructor role.
func RequireInstructor(roles RoleSource) gin.HandlerFunc {
	return requireRole(roles, models.RoleInstructor, appErrors.ErrNotInstructor)
}

func requireRole(roles RoleSource, role models.StudentRole, denial *appErrors.Error) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		ok, err := roles.HasRole(c.Request.Context(), claims.Email, role)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !ok {
			response.Error(c, denial)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the verified claims set by the JWT middleware.
func ClaimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
