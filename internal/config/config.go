// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DatabaseURL is the Postgres connection string for the document store.
	// Empty means the documents compiled into the binary are served directly.
	DatabaseURL string

	// RedisURL enables the document cache when set (redis://host:6379/0).
	RedisURL string

	// DocumentCacheTTL is how long a cached document lives in Redis.
	DocumentCacheTTL time.Duration

	// CountdownInterval is the countdown refresh period. Minimum one second.
	CountdownInterval time.Duration
}

var defaults = map[string]string{
	"PORT":               "8080",
	"LOG_LEVEL":          "info",
	"CORS_ORIGINS":       "http://localhost:5173",
	"DATABASE_URL":       "",
	"REDIS_URL":          "",
	"DOCUMENT_CACHE_TTL": "5m",
	"COUNTDOWN_INTERVAL": "60s",
}

// Load reads configuration from environment variables and returns a Config.
// Unset or empty variables take their defaults. Returns one error naming
// every variable that holds an invalid value.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := Config{
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins: splitCSV(v.GetString("CORS_ORIGINS")),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisURL:    v.GetString("REDIS_URL"),
	}

	var invalid []string

	ttl, err := time.ParseDuration(v.GetString("DOCUMENT_CACHE_TTL"))
	if err != nil || ttl <= 0 {
		invalid = append(invalid, "DOCUMENT_CACHE_TTL")
	}
	cfg.DocumentCacheTTL = ttl

	interval, err := time.ParseDuration(v.GetString("COUNTDOWN_INTERVAL"))
	if err != nil || interval < time.Second {
		invalid = append(invalid, "COUNTDOWN_INTERVAL")
	}
	cfg.CountdownInterval = interval

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		invalid = append(invalid, "PORT")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
