package routes

import (
	"devfolio/internal/api/handlers"
	"devfolio/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Catalog *handlers.CatalogHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	Auth       *middleware.AuthMiddleware
}
