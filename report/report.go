// Package report prints tracker status lines to the console
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/tracker"
	"github.com/ayoisaiah/worktime/internal/ui"
)

const notificationTitle = "worktime"

var summaryBox = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Padding(0, 2)

var summaryTitle = lipgloss.NewStyle().Bold(true)

// Console writes tracker events to a terminal.
type Console struct {
	out    io.Writer
	notify func(title, message, appIcon string) error
	// Notify sends a desktop notification with every periodic report.
	Notify bool
	// Quiet suppresses periodic progress lines. Notifications are still
	// sent.
	Quiet bool
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer, notify bool) *Console {
	return &Console{
		out:    out,
		notify: beeep.Notify,
		Notify: notify,
	}
}

// Started announces the new session and the totals loaded from disk.
func (c *Console) Started(r tracker.Report) {
	info := pterm.Info.WithWriter(c.out)

	info.Printfln("Session started on %s", ui.Highlight(r.Date))
	info.Printfln("All-time total: %s", ui.Cyan(ledger.FormatDuration(r.AllTime)))
	info.Printfln("Today's total: %s", ui.Green(ledger.FormatDuration(r.Today)))
}

// Progress prints a periodic update of the running totals.
func (c *Console) Progress(r tracker.Report) {
	msg := fmt.Sprintf(
		"Current: %s | Today: %s | All-Time: %s",
		ledger.FormatDuration(r.Elapsed),
		ledger.FormatDuration(r.Today),
		ledger.FormatDuration(r.AllTime),
	)

	if !c.Quiet {
		pterm.Info.WithWriter(c.out).Println(msg)
	}

	if !c.Notify || c.notify == nil {
		return
	}

	if err := c.notify(notificationTitle, msg, ""); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

// Summary prints the end of session box.
func (c *Console) Summary(r tracker.Report) {
	fmt.Fprintln(c.out, SummaryBox(r))
}

// Saved reports the outcome of persisting the ledger.
func (c *Console) Saved(path string, err error) {
	if err != nil {
		pterm.Error.WithWriter(c.out).Printfln("Failed to save data: %v", err)
		return
	}

	pterm.Success.WithWriter(c.out).Printfln("Session saved to %s", path)
}

// SummaryBox renders the totals of a finished session inside a border.
func SummaryBox(r tracker.Report) string {
	rows := [][2]string{
		{"This Session:", ledger.FormatDuration(r.Elapsed)},
		{"Today Total:", ledger.FormatDuration(r.Today)},
		{"All-Time:", ledger.FormatDuration(r.AllTime)},
		{"Total Sessions:", fmt.Sprintf("%d", r.Sessions)},
	}

	var b strings.Builder

	b.WriteString(summaryTitle.Render("Work Session Summary"))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("\n%-16s%s", row[0], row[1]))
	}

	return summaryBox.Render(b.String())
}

// Error prints err to stderr.
func Error(err error) {
	pterm.Error.WithWriter(os.Stderr).Println(err)
}
