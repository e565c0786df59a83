package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devfolio/internal/api/middleware"
	"devfolio/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCatalogRouter mounts the catalog routes without the auth gate so the
// handlers themselves can be exercised. The gate is covered separately.
func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	vm := middleware.NewValidationMiddleware()
	handler := NewCatalogHandler()
	router.GET("/api/v1/catalog", vm.ValidateCatalogQuery(), handler.List)
	router.GET("/api/v1/catalog/:name", handler.Get)

	return router
}

type listEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Technologies []catalog.Technology `json:"technologies"`
		Total        int                  `json:"total"`
	} `json:"data"`
}

func getCatalog(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogList_All(t *testing.T) {
	router := newCatalogRouter()
	w := getCatalog(router, "/api/v1/catalog")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, len(catalog.All()), resp.Data.Total)
	assert.Equal(t, resp.Data.Total, len(resp.Data.Technologies))

	// Highest proficiency first
	for i := 1; i < len(resp.Data.Technologies); i++ {
		assert.GreaterOrEqual(t,
			resp.Data.Technologies[i-1].Proficiency,
			resp.Data.Technologies[i].Proficiency)
	}
}

func TestCatalogList_FilterByCategory(t *testing.T) {
	router := newCatalogRouter()
	w := getCatalog(router, "/api/v1/catalog?category=databases")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.Total)
	for _, tech := range resp.Data.Technologies {
		assert.Equal(t, catalog.CategoryDatabases, tech.Category)
	}
}

func TestCatalogList_FilterByMixedCaseCategory(t *testing.T) {
	router := newCatalogRouter()

	// A spelling the validator accepts must also match entries
	w := getCatalog(router, "/api/v1/catalog?category=Databases")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.Data.Total)
	for _, tech := range resp.Data.Technologies {
		assert.Equal(t, catalog.CategoryDatabases, tech.Category)
	}
}

func TestCatalogList_FilterByMinProficiency(t *testing.T) {
	router := newCatalogRouter()
	w := getCatalog(router, "/api/v1/catalog?min_proficiency=90")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, tech := range resp.Data.Technologies {
		assert.GreaterOrEqual(t, tech.Proficiency, 90)
	}
}

func TestCatalogList_InvalidQuery(t *testing.T) {
	router := newCatalogRouter()

	tests := []struct {
		name string
		path string
	}{
		{"unknown category", "/api/v1/catalog?category=underwater"},
		{"proficiency out of range", "/api/v1/catalog?min_proficiency=150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getCatalog(router, tt.path)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCatalogGet(t *testing.T) {
	router := newCatalogRouter()

	w := getCatalog(router, "/api/v1/catalog/PostgreSQL")
	require.Equal(t, http.StatusOK, w.Code)

	// Lookup is case-insensitive
	w = getCatalog(router, "/api/v1/catalog/postgresql")
	assert.Equal(t, http.StatusOK, w.Code)

	w = getCatalog(router, "/api/v1/catalog/COBOL")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// staticVerifier always answers the same way; enough to drive the gate.
type staticVerifier struct {
	configured bool
}

func (s staticVerifier) Configured() bool { return s.configured }

func (s staticVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	return "user-1", nil
}

func newGatedCatalogRouter(am *middleware.AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	vm := middleware.NewValidationMiddleware()
	handler := NewCatalogHandler()
	group := router.Group("/api/v1/catalog")
	group.Use(am.RequireAuth())
	group.GET("", vm.ValidateCatalogQuery(), handler.List)

	return router
}

func TestCatalogRoutes_AuthNotConfigured(t *testing.T) {
	router := newGatedCatalogRouter(middleware.NewAuthMiddlewareWithVerifier(staticVerifier{configured: false}))
	w := getCatalog(router, "/api/v1/catalog")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCatalogRoutes_Unauthenticated(t *testing.T) {
	router := newGatedCatalogRouter(middleware.NewAuthMiddlewareWithVerifier(staticVerifier{configured: true}))
	w := getCatalog(router, "/api/v1/catalog")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogRoutes_AuthenticatedPassesThrough(t *testing.T) {
	router := newGatedCatalogRouter(middleware.NewAuthMiddlewareWithVerifier(staticVerifier{configured: true}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
