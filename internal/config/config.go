package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTExpiry        time.Duration
	GuessesPerSecond float64
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/securepassgen?parseTime=true"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:        24 * time.Hour,
		GuessesPerSecond: getEnvFloat("GUESSES_PER_SECOND", 1e9),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// ClipboardTimeout returns how long copied passwords stay on the
// clipboard before being cleared, from CLIPBOARD_TIMEOUT_SECONDS.
// Read on demand rather than via Load because only the CLI consumes it.
func ClipboardTimeout() time.Duration {
	return time.Duration(getEnvInt("CLIPBOARD_TIMEOUT_SECONDS", 30)) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
		slog.Warn("ignoring invalid value", "key", key, "value", v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid value", "key", key, "value", v)
	}
	return fallback
}
