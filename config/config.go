// ABOUTME: Configuration loader for the bookshelf service
// ABOUTME: Loads settings from .env files and environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port         string
	CookieSecure bool // Set Secure flag on session cookies (default: true)

	// Session credential
	TokenSigningKey string // HMAC key for signing session tokens (required)
	TokenTTL        int    // token lifetime in seconds (default: 3600)

	// Caching
	SearchCacheTTL int // seconds, TTL for cached search results (default 30)

	// CSRF
	CSRFEnabled bool // Require double-submit CSRF tokens on mutating requests (default: false)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitAuth    int  // Requests per minute for register/login (default: 5)
	RateLimitWrite   int  // Requests per minute for review mutation (default: 10)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 100)
}

// Load reads configuration from an optional .env file and the environment.
// A missing .env file is not an error; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		CookieSecure: getEnvBool("COOKIE_SECURE", true),

		TokenSigningKey: os.Getenv("TOKEN_SIGNING_KEY"),
		TokenTTL:        getEnvInt("TOKEN_TTL", 3600),

		SearchCacheTTL: getEnvInt("SEARCH_CACHE_TTL", 30),

		CSRFEnabled: getEnvBool("CSRF_ENABLED", false),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitAuth:    getEnvInt("RATE_LIMIT_AUTH", 5),
		RateLimitWrite:   getEnvInt("RATE_LIMIT_WRITE", 10),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),
	}

	// Validate required fields
	if cfg.TokenSigningKey == "" {
		return nil, fmt.Errorf("TOKEN_SIGNING_KEY is required")
	}
	if cfg.TokenTTL < 1 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %d", cfg.TokenTTL)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_AUTH", cfg.RateLimitAuth},
		{"RATE_LIMIT_WRITE", cfg.RateLimitWrite},
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
