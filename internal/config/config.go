package config

import (
	"log/slog"
	"os"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// Config holds all runtime settings, read once at startup and threaded
// through the composition root. No package reads the environment after
// Load returns.
type Config struct {
	Port        string
	APIPrefix   string
	Environment string
	LogLevel    slog.Level
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		Port:        envOrDefault("PORT", "4000"),
		APIPrefix:   envOrDefault("API_PREFIX", "/api"),
		Environment: envOrDefault("APP_ENV", "development"),
	}

	switch envOrDefault("LOG_LEVEL", "info") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	return cfg
}

// Development reports whether the service runs in development mode,
// where internal error messages are not sanitized.
func (c Config) Development() bool {
	return c.Environment == "development"
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
