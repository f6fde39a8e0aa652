// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/worktime/internal/pathutil"
)

const Version = "v0.3.0"

type (
	// Config holds all configuration settings
	Config struct {
		Tracker TrackerConfig `mapstructure:"tracker"`
		Storage StorageConfig `mapstructure:"storage"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		System  SystemConfig  `mapstructure:"-"`
	}

	// TrackerConfig holds session tracking settings
	TrackerConfig struct {
		SessionCmd     string        `mapstructure:"session_cmd"`
		ReportInterval time.Duration `mapstructure:"report_interval"`
		Notify         bool          `mapstructure:"notify"`
		Live           bool          `mapstructure:"-"`
	}

	// StorageConfig holds ledger persistence settings
	StorageConfig struct {
		// Backend is either "text" or "bolt"
		Backend string `mapstructure:"backend"`
		// Path overrides the resolved ledger location when set
		Path string `mapstructure:"path"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		NoColor        bool `mapstructure:"-"`
	}

	// LogConfig holds diagnostic log settings
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// SystemConfig holds resolved file locations
	SystemConfig struct {
		ConfigPath string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths returns an Option that fills in file locations from p. An
// explicit storage path is left untouched.
func WithPaths(p *pathutil.Paths) Option {
	return func(c *Config) error {
		if p == nil {
			return fmt.Errorf("paths are not resolved")
		}

		c.System.ConfigPath = p.ConfigFilePath()
		c.System.LogPath = p.LogFilePath()

		if c.Storage.Path != "" {
			return nil
		}

		c.Storage.Path = p.DataFilePath()

		if c.Storage.Backend == BackendBolt {
			c.Storage.Path = p.BoltFilePath()
		}

		return nil
	}
}
