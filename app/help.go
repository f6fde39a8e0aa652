package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

type helpSection struct {
	title string
	body  string
}

var envVars = [][2]string{
	{
		"WORKTIME_DATA_DIR",
		"directory that holds the worktime data folder. Falls back to XDG_DATA_HOME (APPDATA on Windows), then the current directory.",
	},
	{
		"WORKTIME_ENV",
		`suffix for the config, data, and log file names (e.g. "dev" reads config_dev.yml).`,
	},
	{
		"WORKTIME_NO_COLOR, NO_COLOR",
		"set to any value to avoid printing ANSI escape sequences for color output.",
	},
}

// helpText returns the template used for the app help output.
func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}\n"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n"},
		{"VERSION", "\t\t{{.Version}}\n"},
		{
			"COMMANDS",
			fmt.Sprintf(
				"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
				pterm.Green("{{join .Names `, `}}"),
			),
		},
		{
			"OPTIONS",
			fmt.Sprintf(
				"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
				pterm.Green("-{{$element}}"),
				pterm.Green("--{{.Name}} {{.DefaultText}}"),
			),
		},
		{"ENVIRONMENTAL VARIABLES", envHelp()},
	}

	var b strings.Builder

	for _, s := range sections {
		b.WriteString(pterm.Yellow(s.title))
		b.WriteString("\n")
		b.WriteString(s.body)
		b.WriteString("\n")
	}

	return b.String()
}

func envHelp() string {
	var b strings.Builder

	for _, v := range envVars {
		fmt.Fprintf(&b, "\t\t%s: %s\n\n", v[0], v[1])
	}

	return b.String()
}
