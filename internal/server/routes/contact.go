package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, h *Handlers, m *Middleware) {
	public := router.Group("/contact")
	{
		// Public endpoint: the per-client sliding window inside the
		// submission pipeline is the abuse gate here, not auth.
		public.POST("/submit",
			m.Validation.ValidateContactRequest(),
			h.Contact.Submit,
		)
	}
}
