package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports how many sessions are live. Implemented by
// session.Store.
type SessionCounter interface {
	Len() int
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	sessions SessionCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Sessions int               `json:"sessions"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  "1.0.0",
		Sessions: h.sessions.Len(),
		Services: map[string]string{
			"sessions": "healthy",
		},
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes. The
// service holds no connections of its own, so readiness follows
// liveness.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
