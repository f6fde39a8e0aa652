// Package app defines the worktime command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/worktime/internal/config"
)

// Get retrieves the worktime app instance.
func Get() *cli.App {
	worktimeApp := &cli.App{
		Name: "worktime",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Worktime records how long you actively work, keeps that history across 
		restarts, and reports your totals for today and all time. Run it for 
		the duration of a work session and stop it with Ctrl-C to save.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "track",
				Usage:  "Track a work session until interrupted (default command)",
				Flags:  trackFlags(),
				Action: trackAction,
			},
			{
				Name:  "stats",
				Usage: "Print today's and all-time totals without starting a session",
				Flags: []cli.Flag{
					backendFlag,
					dataFileFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:  "list",
				Usage: "List recorded sessions",
				Flags: []cli.Flag{
					backendFlag,
					dataFileFlag,
					sinceFlag,
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, trackFlags()...),
		Action: trackAction,
		Before: beforeAction,
	}

	return worktimeApp
}
