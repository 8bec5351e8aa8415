package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/service"
)

// LivenessMessage is the plain-text body of GET /. The frontend pings it to
// confirm the server is up, so the text stays as-is.
const LivenessMessage = "Bushido_Bootcamp is running"

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for readiness/liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Liveness serves the root banner.
func (h *MetricsHandler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, LivenessMessage)
}
