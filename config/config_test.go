package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIVESTAR_CLIENT_ID", "abc123")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.ClientID)
	assert.Equal(t, "https://fivestar.support", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Platform)
	assert.Empty(t, cfg.AppVersion)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FIVESTAR_CLIENT_ID", "abc123")
	t.Setenv("FIVESTAR_BASE_URL", "https://x.test/")
	t.Setenv("FIVESTAR_TIMEOUT", "5s")
	t.Setenv("FIVESTAR_PLATFORM", "android")
	t.Setenv("FIVESTAR_APP_VERSION", "3.2.1")
	t.Setenv("FIVESTAR_DEVICE_MODEL", "Pixel 9")
	t.Setenv("FIVESTAR_OS_VERSION", "15")

	cfg, err := Load()

	require.NoError(t, err)
	// Trailing slash is normalized away.
	assert.Equal(t, "https://x.test", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "android", cfg.Platform)
	assert.Equal(t, "3.2.1", cfg.AppVersion)
	assert.Equal(t, "Pixel 9", cfg.DeviceModel)
	assert.Equal(t, "15", cfg.OSVersion)
}

func TestLoad_MissingClientID(t *testing.T) {
	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIVESTAR_CLIENT_ID is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{ClientID: "abc123", Timeout: time.Second},
		},
		{
			name:    "missing client ID",
			cfg:     Config{Timeout: time.Second},
			wantErr: "FIVESTAR_CLIENT_ID is required",
		},
		{
			name:    "zero timeout",
			cfg:     Config{ClientID: "abc123"},
			wantErr: "timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
