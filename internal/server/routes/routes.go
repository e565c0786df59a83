package routes

import (
	"devfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Health check endpoint - no auth required
	SetupHealthRoutes(router, h)

	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h, m)

	// Catalog routes (auth required)
	SetupCatalogRoutes(v1, h, m)

	logger.Info("All routes have been set up successfully")
}
