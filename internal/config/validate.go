package config

import (
	"log/slog"
	"time"
)

var (
	minReportInterval = 1 * time.Second
	maxReportInterval = 24 * time.Hour
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Tracker.ReportInterval < minReportInterval ||
		c.Tracker.ReportInterval > maxReportInterval {
		return errInvalidInterval.Fmt(
			minReportInterval,
			maxReportInterval,
			c.Tracker.ReportInterval,
		)
	}

	switch c.Storage.Backend {
	case BackendText, BackendBolt:
	default:
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Log.MaxSizeMB < 1 {
		return errInvalidLogSize.Fmt(c.Log.MaxSizeMB)
	}

	return nil
}

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level

	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, errInvalidLogLevel.Fmt(level)
	}

	return l, nil
}
