package main

import (
	"context"
	"os"
	"time"

	"devfolio/internal/config"
	"devfolio/internal/config/firebase"
	"devfolio/internal/logging"
	"devfolio/internal/ratelimit"
	"devfolio/internal/server"
	"devfolio/internal/service"
	"devfolio/internal/telemetry"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	// Initialize Firebase for the gated showcase routes. Without credentials
	// those routes answer 503; the contact pipeline is unaffected.
	if cfg.FirebaseCredentialsFile != "" {
		if err := firebase.InitializeFirebase(cfg.FirebaseCredentialsFile); err != nil {
			logger.Error("Failed to initialize Firebase: %v", err)
			os.Exit(1)
		}
		logger.Info("Firebase Auth initialized")
	} else {
		logger.Warn("FIREBASE_CREDENTIALS_FILE not set - catalog routes will be unavailable")
	}

	// Initialize tracing
	shutdownTelemetry, err := telemetry.Init(context.Background(), cfg.OTLPEndpoint, cfg.Environment)
	if err != nil {
		logger.Error("Failed to initialize telemetry: %v", err)
		os.Exit(1)
	}
	defer shutdownTelemetry(context.Background())

	if cfg.ContactWebhookURL == "" {
		logger.Warn("CONTACT_WEBHOOK_URL not set - contact submissions will fail with a configuration error")
	}

	// One limiter instance for the process; its lifecycle is the server's
	limiter := ratelimit.NewLimiter(ratelimit.Config{
		MaxRequests:    cfg.RateLimitMaxRequests,
		Window:         time.Duration(cfg.RateLimitWindowMs) * time.Millisecond,
		SweepThreshold: cfg.RateLimitSweepThreshold,
	})

	webhook := service.NewWebhookService(cfg.ContactWebhookURL)
	contactService := service.NewContactService(limiter, webhook, logger)

	srv := server.NewServer(cfg)
	srv.Init(contactService)

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
