package app

import (
	"encoding/json"
	"io"
	"time"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/ui"
)

var timeNow = time.Now

// Stats summarises a persisted ledger.
type Stats struct {
	Date     string `json:"date"`
	Today    uint64 `json:"today_seconds"`
	AllTime  uint64 `json:"all_time_seconds"`
	Sessions int    `json:"sessions"`
	Average  uint64 `json:"average_seconds"`
}

// ToJSON returns the indented JSON encoding of s.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func computeStats(l *ledger.Ledger, now time.Time) *Stats {
	st := &Stats{
		Date:     ledger.DateOf(now),
		Today:    l.TodayTotal(now),
		AllTime:  l.Total,
		Sessions: l.Len(),
	}

	if st.Sessions > 0 {
		st.Average = l.Total / uint64(st.Sessions)
	}

	return st
}

func printStats(w io.Writer, st *Stats) error {
	data := [][]string{
		{"STAT", "VALUE"},
		{"Today (" + st.Date + ")", ui.Green(ledger.FormatDuration(st.Today))},
		{"All-Time", ui.Cyan(ledger.FormatDuration(st.AllTime))},
		{"Sessions", ui.Highlight(st.Sessions)},
		{"Average Session", ledger.FormatDuration(st.Average)},
	}

	return ui.PrintTable(w, data)
}
