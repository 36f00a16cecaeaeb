package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:4000/api", cfg.BackendBaseURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 2, cfg.BackendRetryMax)
	assert.Equal(t, 8*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 720*time.Hour, cfg.RememberExpiryDuration)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, 30*time.Second, cfg.MutationGuardTTL)
	assert.Equal(t, "10-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("BACKEND_BASE_URL", "https://practice.example.com/api/")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("BACKEND_RETRY_MAX", "-1")
	t.Setenv("SESSION_STORE", "REDIS")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Test case 1: trailing slash trimmed from the backend url
	assert.Equal(t, "https://practice.example.com/api", cfg.BackendBaseURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	// Test case 2: negative retry budget clamps to zero
	assert.Equal(t, 0, cfg.BackendRetryMax)
	assert.Equal(t, SessionStoreRedis, cfg.SessionStore)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("MUTATION_GUARD_TTL", "-5s")
	t.Setenv("SESSION_STORE", "etcd")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 30*time.Second, cfg.MutationGuardTTL)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
}
