package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/timeutil"
)

// formatElapsed returns the elapsed time formatted as "HH:MM:SS".
func formatElapsed(seconds uint64) string {
	return fmt.Sprintf(
		"%02d:%02d:%02d",
		seconds/3600,
		(seconds%3600)/60,
		seconds%60,
	)
}

// startedAt returns the session start in local time.
func (m *Model) startedAt() time.Time {
	return time.Unix(int64(m.report.StartedAt), 0).Local()
}

func (m *Model) totalsView() string {
	var s strings.Builder

	s.WriteString(m.style.Secondary.Render("Today:    "))
	s.WriteString(ledger.FormatDuration(m.report.Today))
	s.WriteString("\n")
	s.WriteString(m.style.Secondary.Render("All-Time: "))
	s.WriteString(ledger.FormatDuration(m.report.AllTime))
	s.WriteString("\n")
	s.WriteString(m.style.Secondary.Render("Sessions: "))
	s.WriteString(fmt.Sprintf("%d", m.report.Sessions))

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.style.Main.Render("Work session"))
	s.WriteString(
		m.style.Hint.Render(
			" since " + timeutil.Clock(m.startedAt(), m.clock24) + " (" + m.report.Date + ")",
		),
	)
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(formatElapsed(m.report.Elapsed)))
	s.WriteString("\n\n")
	s.WriteString(m.totalsView())
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.quit}))

	return m.style.Base.Render(s.String())
}
