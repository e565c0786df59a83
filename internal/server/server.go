package server

import (
	"io"

	"devfolio/internal/api/handlers"
	"devfolio/internal/api/middleware"
	"devfolio/internal/config"
	"devfolio/internal/server/routes"
	"devfolio/internal/service"
	"devfolio/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, handlers, and routes
func (s *Server) Init(contactService *service.ContactService) {
	// Global middleware
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
	if s.cfg.OTLPEndpoint != "" {
		s.router.Use(otelgin.Middleware(telemetry.ServiceName))
	}

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactService),
		Catalog: handlers.NewCatalogHandler(),
		Health:  handlers.NewHealthHandler(),
	}

	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		Auth:       middleware.NewAuthMiddleware(),
	}

	routes.Setup(s.router, h, m)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

// Router exposes the engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
