package config

import (
	"os"
	"strconv"
	"time"
)

// Config is everything the dashboard reads from the environment.
type Config struct {
	Port            string
	UpstreamBaseURL string
	AllowedOrigin   string
	RefreshInterval time.Duration
	StatsTTL        time.Duration
	GinMode         string
}

// Load reads the environment with sane development defaults. The .env file,
// if any, is loaded by main before this runs.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		RefreshInterval: getDuration("MENU_REFRESH_SECONDS", 5),
		StatsTTL:        getDuration("STATS_TTL_SECONDS", 30),
		GinMode:         getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallbackSeconds int) time.Duration {
	seconds := fallbackSeconds
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			seconds = n
		}
	}
	return time.Duration(seconds) * time.Second
}
