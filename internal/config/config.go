package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Contact Form Configuration
	// ContactWebhookURL is the destination for contact form submissions.
	// Leaving it unset is surfaced per-request, not at startup.
	ContactWebhookURL string `env:"CONTACT_WEBHOOK_URL"`

	// Rate Limiting Configuration
	RateLimitMaxRequests    int   `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"5"`
	RateLimitWindowMs       int64 `env:"RATE_LIMIT_WINDOW_MS" envDefault:"60000"`
	RateLimitSweepThreshold int   `env:"RATE_LIMIT_SWEEP_THRESHOLD" envDefault:"1000"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Auth Configuration
	FirebaseCredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try the environment-specific .env file first, then the generic one.
	// godotenv never overwrites variables that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RateLimitMaxRequests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive")
	}
	if cfg.RateLimitWindowMs <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_MS must be positive")
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
