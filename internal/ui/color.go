// Package ui holds console styling helpers
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that read better on dark
// terminals.
var DarkTheme = true

type themed struct {
	dark  pterm.Color
	light pterm.Color
}

func (c themed) sprint(a any) string {
	if DarkTheme {
		return c.dark.Sprint(a)
	}

	return c.light.Sprint(a)
}

var (
	green     = themed{dark: pterm.FgLightGreen, light: pterm.FgGreen}
	cyan      = themed{dark: pterm.FgLightCyan, light: pterm.FgCyan}
	highlight = themed{dark: pterm.FgLightWhite, light: pterm.FgBlack}
)

// Green is used for today's totals.
func Green(a any) string {
	return green.sprint(a)
}

// Cyan is used for all-time totals.
func Cyan(a any) string {
	return cyan.sprint(a)
}

func Highlight(a any) string {
	return highlight.sprint(a)
}

// DisableStyling turns off colours and prefix labels for every pterm
// printer.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()

	for _, p := range []*pterm.PrefixPrinter{
		&pterm.Debug,
		&pterm.Info,
		&pterm.Success,
		&pterm.Warning,
		&pterm.Error,
		&pterm.Fatal,
	} {
		p.Prefix.Text = ""
	}
}
