// Package monitor renders a live view of the running work session
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/worktime/internal/tracker"
)

const refreshInterval = time.Second

type tickMsg time.Time

// Source supplies the totals shown in the view.
type Source interface {
	Snapshot() tracker.Report
}

// Style holds the styles used by the view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// DefaultStyle returns the view styles for a dark or light terminal.
func DefaultStyle(darkTheme bool) Style {
	main := lipgloss.Color("#B0DB43")
	secondary := lipgloss.Color("#12EAEA")

	if !darkTheme {
		main = lipgloss.Color("#3D7A0B")
		secondary = lipgloss.Color("#0B6E8A")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")),
	}
}

// Model is the bubbletea model for the live view. Quitting the program
// does not finalize the session; the caller shuts the tracker down once
// the program returns.
type Model struct {
	source   Source
	help     help.Model
	keys     keymap
	style    Style
	report   tracker.Report
	clock24  bool
	quitting bool
}

// New returns a live view of source.
func New(source Source, style Style, twentyFourHour bool) *Model {
	return &Model{
		source:  source,
		help:    help.New(),
		keys:    defaultKeymap,
		style:   style,
		report:  source.Snapshot(),
		clock24: twentyFourHour,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.report = m.source.Snapshot()
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	default:
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))
		}
	}

	return m, nil
}

// Quitting reports whether the user asked to stop tracking.
func (m *Model) Quitting() bool {
	return m.quitting
}
