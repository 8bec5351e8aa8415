// Package requestid tags every request with an ID so log lines from one
// request can be correlated.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the ID. Upstream proxies may
// set it already; an inbound value is kept so the ID stays stable across hops.
const Header = "X-Request-ID"

const contextKey = "requestID"

// Middleware ensures the request has an ID and echoes it on the response.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Header(Header, id)

		c.Next()
	}
}

// Value returns the request ID, or "" outside the middleware.
func Value(c *gin.Context) string {
	id, _ := c.Value(contextKey).(string)
	return id
}
