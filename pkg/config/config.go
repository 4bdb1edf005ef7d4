// Package config loads the daemon configuration from a YAML file and maps it
// onto the browser session options.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/entrhq/browserd/pkg/browser"
	"gopkg.in/yaml.v3"
)

// Config is the top-level daemon configuration.
type Config struct {
	Browser   BrowserConfig   `yaml:"browser"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BrowserConfig controls how the browser session is launched.
type BrowserConfig struct {
	// Headless launches the browser without a visible window.
	Headless bool `yaml:"headless"`

	// SlowMoMs delays each driver operation by the given number of
	// milliseconds. Useful when watching a headed session.
	SlowMoMs float64 `yaml:"slow_mo_ms"`

	// TimeoutMs is the default timeout for navigations, waits and element
	// actions, in milliseconds.
	TimeoutMs int `yaml:"timeout_ms"`

	// PollIntervalMs is the pause between element-state checks in waits,
	// in milliseconds.
	PollIntervalMs int `yaml:"poll_interval_ms"`

	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`

	// InstallDriver downloads the browser binaries on startup when they
	// are missing.
	InstallDriver bool `yaml:"install_driver"`
}

// TelemetryConfig sizes the console and network capture buffers.
type TelemetryConfig struct {
	ConsoleBufferSize int `yaml:"console_buffer_size"`
	NetworkBufferSize int `yaml:"network_buffer_size"`
}

// LoggingConfig defines logging configuration.
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity"`
}

// DefaultConfig returns a configuration suitable for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:       true,
			TimeoutMs:      int(browser.DefaultTimeout / time.Millisecond),
			PollIntervalMs: int(browser.DefaultPollInterval / time.Millisecond),
			ViewportWidth:  browser.DefaultViewportWidth,
			ViewportHeight: browser.DefaultViewportHeight,
		},
		Telemetry: TelemetryConfig{
			ConsoleBufferSize: browser.DefaultBufferCapacity,
			NetworkBufferSize: browser.DefaultBufferCapacity,
		},
		Logging: LoggingConfig{
			Verbosity: "normal",
		},
	}
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Browser.TimeoutMs <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %d", c.Browser.TimeoutMs)
	}

	if c.Browser.PollIntervalMs <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.Browser.PollIntervalMs)
	}

	if c.Browser.SlowMoMs < 0 {
		return fmt.Errorf("slow_mo_ms cannot be negative")
	}

	if c.Browser.ViewportWidth <= 0 || c.Browser.ViewportHeight <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d",
			c.Browser.ViewportWidth, c.Browser.ViewportHeight)
	}

	if c.Telemetry.ConsoleBufferSize <= 0 {
		return fmt.Errorf("console_buffer_size must be positive, got %d", c.Telemetry.ConsoleBufferSize)
	}

	if c.Telemetry.NetworkBufferSize <= 0 {
		return fmt.Errorf("network_buffer_size must be positive, got %d", c.Telemetry.NetworkBufferSize)
	}

	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	return nil
}

// BrowserOptions maps the configuration onto session manager options.
func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		Headless:        c.Browser.Headless,
		SlowMo:          time.Duration(c.Browser.SlowMoMs * float64(time.Millisecond)),
		Timeout:         time.Duration(c.Browser.TimeoutMs) * time.Millisecond,
		PollInterval:    time.Duration(c.Browser.PollIntervalMs) * time.Millisecond,
		ViewportWidth:   c.Browser.ViewportWidth,
		ViewportHeight:  c.Browser.ViewportHeight,
		ConsoleCapacity: c.Telemetry.ConsoleBufferSize,
		NetworkCapacity: c.Telemetry.NetworkBufferSize,
		InstallDriver:   c.Browser.InstallDriver,
	}
}
