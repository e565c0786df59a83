package handlers

import (
	"net/http"

	"devfolio/internal/api/constants"
	"devfolio/internal/api/dto/common"
	catalogdto "devfolio/internal/api/dto/v1/catalog"
	"devfolio/internal/catalog"
	"devfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the technology catalog behind the skill showcase
// pages (checklist and universe views).
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List returns the catalog, optionally filtered by category and minimum
// proficiency.
func (h *CatalogHandler) List(c *gin.Context) {
	queryData, exists := c.Get(constants.ContextKeyCatalogQuery)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog query not found in context"})
		return
	}
	query := queryData.(*catalogdto.ListQuery)

	var technologies []catalog.Technology
	if query.Category != "" {
		technologies = catalog.ByCategory(catalog.Category(query.Category))
	} else {
		technologies = catalog.All()
	}

	if query.MinProficiency > 0 {
		filtered := technologies[:0:0]
		for _, tech := range technologies {
			if tech.Proficiency >= query.MinProficiency {
				filtered = append(filtered, tech)
			}
		}
		technologies = filtered
	}

	utils.HandleSuccess(c, catalogdto.ListResponse{
		Technologies: technologies,
		Total:        len(technologies),
	})
}

// Get returns a single technology write-up by name
func (h *CatalogHandler) Get(c *gin.Context) {
	name := c.Param("name")

	tech, found := catalog.Get(name)
	if !found {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Technology not found", nil))
		return
	}

	utils.HandleSuccess(c, tech)
}
