package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyReportInterval = "tracker.report_interval"
	keyNotify         = "tracker.notify"
	keySessionCmd     = "tracker.session_cmd"
	keyBackend        = "storage.backend"
	keyStoragePath    = "storage.path"
	keyDarkTheme      = "display.dark_theme"
	keyTwentyFourHour = "display.24hr_clock"
	keyLogLevel       = "log.level"
	keyLogMaxSize     = "log.max_size_mb"
	keyLogMaxBackups  = "log.max_backups"
)

const (
	BackendText = "text"
	BackendBolt = "bolt"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does
// not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

// WithDefaults returns an Option that applies the default settings without
// touching the filesystem.
func WithDefaults() Option {
	return func(c *Config) error {
		v := viper.New()

		setDefaults(v)

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyReportInterval, "10m")
	v.SetDefault(keyNotify, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyBackend, BackendText)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
}
