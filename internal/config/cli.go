package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Backend    string
	DataFile   string
	SessionCmd string
	Interval   time.Duration
	Notify     bool
	Live       bool
	NoColor    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set on the command line override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Backend:    ctx.String("backend"),
			DataFile:   ctx.String("data-file"),
			SessionCmd: ctx.String("session-cmd"),
			Interval:   ctx.Duration("interval"),
			Notify:     ctx.Bool("notify"),
			Live:       ctx.Bool("live"),
			NoColor:    ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Backend != "" {
		c.Storage.Backend = opts.Backend
	}

	if opts.DataFile != "" {
		c.Storage.Path = opts.DataFile
	}

	if opts.SessionCmd != "" {
		c.Tracker.SessionCmd = opts.SessionCmd
	}

	if opts.Interval != 0 {
		c.Tracker.ReportInterval = opts.Interval
	}

	if opts.Notify {
		c.Tracker.Notify = true
	}

	c.Tracker.Live = opts.Live
	c.Display.NoColor = opts.NoColor
}
