package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
)

// Success bodies are the bare records or arrays, and error bodies use the
// {"error":true,"message":...} shape. Both are part of the wire contract the
// previous server established with its clients.

// JSON sends a success response with the payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Message responds with HTTP 200 and an explanatory message body. Duplicate
// registrations and cart additions are soft successes, not errors.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{"message": message})
}

// Error sends an error response converting the error to the legacy structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": true, "message": appErr.Message})
}
