package main

import (
	"os"

	"github.com/ayoisaiah/worktime/app"
	"github.com/ayoisaiah/worktime/internal/osutil"
	"github.com/ayoisaiah/worktime/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(int(osutil.ExitError))
	}
}
