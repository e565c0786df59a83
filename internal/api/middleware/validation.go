package middleware

import (
	"net/http"

	"devfolio/internal/api/constants"
	catalogdto "devfolio/internal/api/dto/v1/catalog"
	"devfolio/internal/api/dto/v1/contact"
	"devfolio/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request binding and structural validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware and registers
// the custom validators on gin's binding engine.
func NewValidationMiddleware() *ValidationMiddleware {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	return &ValidationMiddleware{}
}

// ValidateContactRequest binds the contact form body and stores it in
// context. Only transport-level problems (unreadable or malformed JSON) are
// rejected here; field rules run later in the submission pipeline so each
// produces its defined message.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

// ValidateCatalogQuery binds and validates the catalog listing filters
func (m *ValidationMiddleware) ValidateCatalogQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var query catalogdto.ListQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Invalid query parameters",
				"errors": validation.FormatValidationError(err),
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCatalogQuery, &query)
		c.Next()
	}
}
