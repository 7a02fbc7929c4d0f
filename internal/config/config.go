// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Browser   BrowserConfig   `mapstructure:"browser" yaml:"browser"`
	Suite     SuiteConfig     `mapstructure:"suite" yaml:"suite"`
	Waits     WaitConfig      `mapstructure:"waits" yaml:"waits"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts" yaml:"artifacts"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// BrowserConfig holds settings for the browser instance driven by the suite.
type BrowserConfig struct {
	Headless        bool     `mapstructure:"headless" yaml:"headless"`
	IgnoreTLSErrors bool     `mapstructure:"ignore_tls_errors" yaml:"ignore_tls_errors"`
	WindowWidth     int      `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight    int      `mapstructure:"window_height" yaml:"window_height"`
	Args            []string `mapstructure:"args" yaml:"args"`
}

// SuiteConfig holds settings for the acceptance suite itself.
type SuiteConfig struct {
	BaseURL     string `mapstructure:"base_url" yaml:"base_url"`
	FixturePath string `mapstructure:"fixture_path" yaml:"fixture_path"`
	ReportPath  string `mapstructure:"report_path" yaml:"report_path"`
}

// WaitConfig tunes the explicit-wait synchronization used by every page
// object. Standard covers normal interactions; Short covers elements that
// legitimately may not exist, such as the cart badge on an empty cart.
type WaitConfig struct {
	StandardTimeout time.Duration `mapstructure:"standard_timeout" yaml:"standard_timeout"`
	ShortTimeout    time.Duration `mapstructure:"short_timeout" yaml:"short_timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
}

// ArtifactsConfig controls where failure diagnostics are written.
type ArtifactsConfig struct {
	ScreenshotDir string `mapstructure:"screenshot_dir" yaml:"screenshot_dir"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "cartwheel")
	v.SetDefault("logger.log_file", "cartwheel.log")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.ignore_tls_errors", false)
	v.SetDefault("browser.window_width", 1920)
	v.SetDefault("browser.window_height", 1080)

	// -- Suite --
	v.SetDefault("suite.base_url", "https://www.saucedemo.com/")
	v.SetDefault("suite.fixture_path", "data/users.json")
	v.SetDefault("suite.report_path", "report.json")

	// -- Waits --
	v.SetDefault("waits.standard_timeout", 10*time.Second)
	v.SetDefault("waits.short_timeout", 2*time.Second)
	v.SetDefault("waits.poll_interval", 250*time.Millisecond)

	// -- Artifacts --
	v.SetDefault("artifacts.screenshot_dir", "screenshots")
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves "~" in user supplied file system locations.
func (c *Config) expandPaths() error {
	for _, p := range []*string{
		&c.Logger.LogFile,
		&c.Suite.FixturePath,
		&c.Suite.ReportPath,
		&c.Artifacts.ScreenshotDir,
	} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("cannot expand path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Suite.BaseURL == "" {
		return fmt.Errorf("suite.base_url is a required configuration field")
	}
	if c.Waits.PollInterval <= 0 {
		return fmt.Errorf("waits.poll_interval must be a positive duration")
	}
	if c.Waits.StandardTimeout <= c.Waits.PollInterval {
		return fmt.Errorf("waits.standard_timeout must be greater than waits.poll_interval")
	}
	if c.Waits.ShortTimeout <= c.Waits.PollInterval {
		return fmt.Errorf("waits.short_timeout must be greater than waits.poll_interval")
	}
	if c.Browser.WindowWidth <= 0 || c.Browser.WindowHeight <= 0 {
		return fmt.Errorf("browser.window_width and browser.window_height must be positive")
	}
	return nil
}
