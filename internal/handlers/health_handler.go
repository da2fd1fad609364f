package handlers

import (
	"github.com/gin-gonic/gin"

	"health-responder/internal/health"
	"health-responder/internal/middleware"
)

// HealthHandler serves the health responder over plain HTTP
type HealthHandler struct {
	responder *health.Responder
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(responder *health.Responder) *HealthHandler {
	return &HealthHandler{
		responder: responder,
	}
}

// Handle maps the HTTP request onto the event shape the router would send and
// writes the responder's output unchanged.
func (h *HealthHandler) Handle(c *gin.Context) {
	req := health.NewRequest(c.Request.URL.Path, c.ClientIP())
	ictx := health.NewInvocationContext(c.GetString(middleware.RequestIDKey))

	resp := h.responder.Respond(req, ictx)

	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}
