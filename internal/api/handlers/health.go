package handlers

import (
	"devfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint. There is no database or other
// backing store to probe; a response is the health signal.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check responds to liveness probes
func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleMessage(c, "Health check OK")
}
