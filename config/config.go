// Package config loads SDK configuration from FIVESTAR_* environment
// variables for host applications that prefer environment-driven setup over
// constructing the client directly.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBaseURL = "https://fivestar.support"
	defaultTimeout = 30 * time.Second
)

// Config holds everything needed to construct a fivestar.Client.
type Config struct {
	// ClientID identifies the calling application to the FiveStar service.
	// Required (FIVESTAR_CLIENT_ID).
	ClientID string
	// BaseURL is the API host, without a trailing slash (FIVESTAR_BASE_URL).
	BaseURL string
	// Timeout bounds each request (FIVESTAR_TIMEOUT, e.g. "30s").
	Timeout time.Duration

	// Device metadata, sent as X-FiveStar-* headers when non-empty
	// (FIVESTAR_PLATFORM, FIVESTAR_APP_VERSION, FIVESTAR_DEVICE_MODEL,
	// FIVESTAR_OS_VERSION).
	Platform    string
	AppVersion  string
	DeviceModel string
	OSVersion   string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FIVESTAR")
	v.AutomaticEnv()

	v.SetDefault("BASE_URL", defaultBaseURL)
	v.SetDefault("TIMEOUT", defaultTimeout)

	cfg := &Config{
		ClientID:    v.GetString("CLIENT_ID"),
		BaseURL:     strings.TrimSuffix(v.GetString("BASE_URL"), "/"),
		Timeout:     v.GetDuration("TIMEOUT"),
		Platform:    v.GetString("PLATFORM"),
		AppVersion:  v.GetString("APP_VERSION"),
		DeviceModel: v.GetString("DEVICE_MODEL"),
		OSVersion:   v.GetString("OS_VERSION"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("FIVESTAR_CLIENT_ID is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
