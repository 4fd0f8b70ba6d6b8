// Package config provides centralized configuration for Hushbook runtime values.
package config

import (
	"os"
	"time"
)

// DefaultGeocodeEndpoint is the Google Maps Geocoding API endpoint.
const DefaultGeocodeEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// RuntimeConfig holds runtime configuration values.
type RuntimeConfig struct {
	// Geocode configuration
	Geocode GeocodeConfig
}

// GeocodeConfig holds geocoding service configuration.
type GeocodeConfig struct {
	// Endpoint is the geocoding API base URL.
	Endpoint string

	// APIKey authenticates against the geocoding service. Empty disables
	// geocoding entirely; places are then saved without coordinates.
	APIKey string

	// Timeout is the geocode request timeout.
	// Default: 10s
	Timeout time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Geocode: GeocodeConfig{
			Endpoint: DefaultGeocodeEndpoint,
			Timeout:  10 * time.Second,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("HUSHBOOK_GEOCODE_URL"); v != "" {
		c.Geocode.Endpoint = v
	}
	if v := os.Getenv("HUSHBOOK_GEOCODE_KEY"); v != "" {
		c.Geocode.APIKey = v
	}
	if v := os.Getenv("HUSHBOOK_GEOCODE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Geocode.Timeout = d
		}
	}
}

// ReloadFromEnv re-reads environment overrides, for tests that mutate env.
func (c *RuntimeConfig) ReloadFromEnv() {
	*c = *DefaultRuntimeConfig()
	c.loadFromEnv()
}
