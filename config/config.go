package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Signup endpoint
	SignupEndpointURL    string
	SignupTimeoutSeconds int
	// UI sessions
	SessionTTLMinutes   int
	SessionCookieSecure bool
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
	// Error reporting
	SentryDSN         string
	SentryEnvironment string
	AppVersion        string
	// CORS for the JSON API
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally; ignored when missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		SignupEndpointURL:    strings.TrimSpace(getEnv("SIGNUP_ENDPOINT_URL", "http://localhost:8000/api/signup")),
		SignupTimeoutSeconds: getEnvInt("SIGNUP_TIMEOUT_SECONDS", 10),
		SessionTTLMinutes:    getEnvInt("SESSION_TTL_MINUTES", 60),
		SessionCookieSecure:  getEnvBool("SESSION_COOKIE_SECURE", false),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 5),   // 5 submissions per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300), // 300 requests per window
		// Error reporting
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "development"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "")),
	}

	if cfg.SignupTimeoutSeconds <= 0 {
		cfg.SignupTimeoutSeconds = 10
	}
	if cfg.SessionTTLMinutes <= 0 {
		cfg.SessionTTLMinutes = 60
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions and rate limits will be kept in memory.")
	}

	return cfg, nil
}

func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func (c *Config) SignupTimeout() time.Duration {
	return time.Duration(c.SignupTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// splitList parses a comma separated value, dropping blanks and trailing slashes
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
