// Package config reads service configuration from the environment.
// cmd/api loads a .env file first when one is present.
package config

import (
	"os"
	"strconv"
)

const (
	defaultPort          = 8080
	defaultDataFile      = "data/grades.csv"
	defaultRateLimit     = 120
	defaultWindowSeconds = 60
)

// Config holds the runtime knobs for the API server.
type Config struct {
	Port          int
	DataFile      string
	Debug         bool
	RateLimit     int
	WindowSeconds int
}

// Load reads configuration from the environment, falling back to defaults
// for anything unset or unparsable.
func Load() Config {
	return Config{
		Port:          envInt("PORT", defaultPort),
		DataFile:      envString("GRADELENS_DATA_FILE", defaultDataFile),
		Debug:         envBool("GRADELENS_DEBUG"),
		RateLimit:     envInt("GRADELENS_RATE_LIMIT", defaultRateLimit),
		WindowSeconds: envInt("GRADELENS_RATE_WINDOW_SECONDS", defaultWindowSeconds),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
