package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures the skill showcase routes. Both views read
// the same catalog; access requires a verified identity token.
func SetupCatalogRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	protected := router.Group("/catalog")
	protected.Use(m.Auth.RequireAuth())
	{
		protected.GET("", m.Validation.ValidateCatalogQuery(), h.Catalog.List)
		protected.GET("/:name", h.Catalog.Get)
	}
}
