package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SIGNUP_ENDPOINT_URL", "http://localhost:8000/api/signup")
	t.Setenv("SIGNUP_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("SESSION_TTL_MINUTES", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/signup", cfg.SignupEndpointURL)
	assert.Equal(t, 10*time.Second, cfg.SignupTimeout())
	assert.Equal(t, time.Hour, cfg.SessionTTL())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com/, ,https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsRelease())
	assert.True(t, cfg.SessionCookieSecure)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}
