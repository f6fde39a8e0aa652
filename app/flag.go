package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	intervalFlag = &cli.DurationFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "How often to print progress while tracking (default: 10m)",
	}

	notifyFlag = &cli.BoolFlag{
		Name:    "notify",
		Aliases: []string{"n"},
		Usage:   "Show a desktop notification with each progress report",
	}

	liveFlag = &cli.BoolFlag{
		Name:    "live",
		Aliases: []string{"l"},
		Usage:   "Show a live view of the running session",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after the session is saved",
	}

	backendFlag = &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Storage backend for the session ledger: text or bolt (default: text)",
	}

	dataFileFlag = &cli.StringFlag{
		Name:    "data-file",
		Aliases: []string{"f"},
		Usage:   "Read and write the session ledger at this path",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only include sessions started on or after this date (e.g. '2024-01-05' or '7 days ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

func trackFlags() []cli.Flag {
	return []cli.Flag{
		intervalFlag,
		notifyFlag,
		liveFlag,
		sessionCmdFlag,
		backendFlag,
		dataFileFlag,
	}
}
