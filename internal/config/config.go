// Package config loads runtime configuration from environment variables.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable, with development-friendly defaults.
type Config struct {
	Env      string // application environment ("dev", "prod")
	Port     string // HTTP port to listen on
	DBPath   string // SQLite database path (":memory:" for ephemeral)
	LogLevel string // logrus level name
}

// Load reads a local .env file when present and assembles the config.
func Load() *Config {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		Env:      getEnv("APP_ENV", "dev"),
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", "auction.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
