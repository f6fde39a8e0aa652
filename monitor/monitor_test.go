package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/worktime/internal/tracker"
)

type fixedSource struct {
	report tracker.Report
	calls  int
}

func (f *fixedSource) Snapshot() tracker.Report {
	f.calls++
	return f.report
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", formatElapsed(0))
	assert.Equal(t, "00:01:05", formatElapsed(65))
	assert.Equal(t, "01:01:01", formatElapsed(3661))
	assert.Equal(t, "100:00:00", formatElapsed(360000))
}

func TestUpdateRefreshesOnTick(t *testing.T) {
	src := &fixedSource{report: tracker.Report{Elapsed: 1}}

	m := New(src, DefaultStyle(true), false)

	src.report = tracker.Report{Date: "2024-01-02", Elapsed: 3661, Today: 4000, AllTime: 9000, Sessions: 3}

	_, cmd := m.Update(tickMsg(time.Now()))

	assert.NotNil(t, cmd)
	assert.Equal(t, 2, src.calls)

	view := m.View()

	assert.Contains(t, view, "01:01:01")
	assert.Contains(t, view, "1h 6m 40s")
	assert.Contains(t, view, "2h 30m 0s")
	assert.Contains(t, view, "2024-01-02")
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m := New(&fixedSource{}, DefaultStyle(false), true)

		_, cmd := m.Update(k)

		assert.True(t, m.Quitting())
		assert.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestOtherKeysAreIgnored(t *testing.T) {
	m := New(&fixedSource{}, DefaultStyle(true), true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.False(t, m.Quitting())
	assert.Nil(t, cmd)
}

func TestViewShowsSessionStart(t *testing.T) {
	start := time.Date(2024, 1, 2, 9, 30, 15, 0, time.Local)

	src := &fixedSource{report: tracker.Report{
		Date:      "2024-01-02",
		StartedAt: uint64(start.Unix()),
	}}

	m := New(src, DefaultStyle(true), true)

	assert.Contains(t, m.View(), "since 09:30:15")

	src.report.Elapsed = 120

	_, _ = m.Update(tickMsg(time.Now()))

	assert.Contains(t, m.View(), "since 09:30:15")
}
