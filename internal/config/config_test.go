package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/config"
)

// clearEnv blanks every variable Load reads; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "DATABASE_URL", "REDIS_URL",
		"DOCUMENT_CACHE_TTL", "COUNTDOWN_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default.
// No variable is required: without DATABASE_URL the embedded documents are served.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 5*time.Minute, cfg.DocumentCacheTTL)
	require.Equal(t, time.Minute, cfg.CountdownInterval)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/tripdash")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("DOCUMENT_CACHE_TTL", "30s")
	t.Setenv("COUNTDOWN_INTERVAL", "5s")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "postgres://user:pass@db:5432/tripdash", cfg.DatabaseURL)
	require.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	require.Equal(t, 30*time.Second, cfg.DocumentCacheTTL)
	require.Equal(t, 5*time.Second, cfg.CountdownInterval)
}

// TestLoad_invalidValues verifies that one error names every bad variable.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("DOCUMENT_CACHE_TTL", "five minutes")
	t.Setenv("COUNTDOWN_INTERVAL", "500ms")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "PORT")
	require.ErrorContains(t, err, "DOCUMENT_CACHE_TTL")
	require.ErrorContains(t, err, "COUNTDOWN_INTERVAL")
}

// TestLoad_ignoresRetiredBodyLimit verifies MAX_BODY_BYTES is no longer read:
// the API has no request bodies, so a stale value must not fail startup.
func TestLoad_ignoresRetiredBodyLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_BODY_BYTES", "not-a-number")

	_, err := config.Load()

	require.NoError(t, err)
}
