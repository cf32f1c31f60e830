package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is the ambient configuration surface (SPEC_FULL.md §6 ambient
// stack), loaded from the process environment the way the teacher's
// config.Load does — 12-factor, no config file.
type Config struct {
	// Database
	DatabaseURL string

	// Auth
	AuthSecret string

	// Push (VAPID / Web Push, C5)
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDContact    string

	// CORS
	CORSOrigins []string

	// Server
	Port        string
	Environment string
}

// Load reads Config from the process environment only, applying the
// teacher's getEnv-with-default pattern. It does not read a .env file;
// cmd/api and cmd/migrate call godotenv.Load before Load for that.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),

		AuthSecret: getEnv("AUTH_SECRET", ""),

		VAPIDPublicKey:  getEnv("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey: getEnv("VAPID_PRIVATE_KEY", ""),
		VAPIDContact:    getEnv("VAPID_CONTACT_EMAIL", ""),

		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if len(cfg.AuthSecret) < 32 {
		return nil, fmt.Errorf("AUTH_SECRET must be at least 32 characters")
	}
	switch cfg.Environment {
	case "development", "staging", "production":
	default:
		return nil, fmt.Errorf("ENVIRONMENT must be one of development, staging, production")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
