package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the environment. A .env file in the
// working directory is loaded first (missing files are fine), then process
// environment variables win over it.
//
// Recognized variables:
//
//	ADDRESS       HTTP bind address (e.g., ":3000")
//	AUTH_BACKEND  credential store backend: "memory" or "postgres"
//	DATABASE_URL  PostgreSQL DSN
//	SECRET_KEY    HMAC secret for session tokens
//	SESSION_TTL   session token lifetime as a Go duration ("10m", "1h")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("AUTH_BACKEND"); v != "" {
		config.Backend = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
}
