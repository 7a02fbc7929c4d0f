// File: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "https://www.saucedemo.com/", cfg.Suite.BaseURL)
	assert.Equal(t, "data/users.json", cfg.Suite.FixturePath)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 10*time.Second, cfg.Waits.StandardTimeout)
	assert.Equal(t, 2*time.Second, cfg.Waits.ShortTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Waits.PollInterval)
	assert.Equal(t, "screenshots", cfg.Artifacts.ScreenshotDir)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("Valid Defaults", func(t *testing.T) {
		cfg := NewDefaultConfig()
		assert.NoError(t, cfg.Validate(), "default config should validate cleanly")
	})

	t.Run("Missing Base URL", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Suite.BaseURL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "suite.base_url")
	})

	t.Run("Non-Positive Poll Interval", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Waits.PollInterval = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "waits.poll_interval must be a positive duration")
	})

	t.Run("Timeout Not Above Poll Interval", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Waits.StandardTimeout = cfg.Waits.PollInterval
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "waits.standard_timeout must be greater than waits.poll_interval")

		cfg = NewDefaultConfig()
		cfg.Waits.ShortTimeout = 100 * time.Millisecond
		cfg.Waits.PollInterval = 250 * time.Millisecond
		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "waits.short_timeout must be greater than waits.poll_interval")
	})

	t.Run("Invalid Window Size", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Browser.WindowWidth = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "window_width")
	})
}

// -- Viper Round-Trip Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("Defaults Pass Through", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "https://www.saucedemo.com/", cfg.Suite.BaseURL)
		assert.Equal(t, "report.json", cfg.Suite.ReportPath)
	})

	t.Run("Overrides Are Honored", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("suite.base_url", "http://localhost:4444/")
		v.Set("waits.standard_timeout", "5s")
		v.Set("browser.headless", false)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4444/", cfg.Suite.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Waits.StandardTimeout)
		assert.False(t, cfg.Browser.Headless)
	})

	t.Run("Invalid Config Is Rejected", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("waits.poll_interval", "0s")

		_, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("Home Paths Are Expanded", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("suite.fixture_path", "~/fixtures/users.json")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.NotContains(t, cfg.Suite.FixturePath, "~")
	})
}
