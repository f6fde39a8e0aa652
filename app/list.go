package app

import (
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/timeutil"
	"github.com/ayoisaiah/worktime/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified time range"

// parseSince resolves a --since value to the start of the day it names.
func parseSince(s string) (time.Time, error) {
	t, err := timeutil.FromStr(s)
	if err != nil {
		return time.Time{}, err
	}

	return timeutil.RoundToStart(t), nil
}

// filterSince keeps the sessions that started at or after since.
func filterSince(sessions []ledger.Session, since time.Time) []ledger.Session {
	filtered := make([]ledger.Session, 0, len(sessions))

	for _, s := range sessions {
		if !s.StartTime().Before(since) {
			filtered = append(filtered, s)
		}
	}

	return filtered
}

func sessionsJSON(sessions []ledger.Session) ([]byte, error) {
	if sessions == nil {
		sessions = []ledger.Session{}
	}

	return json.Marshal(sessions)
}

func sessionRows(sessions []ledger.Session, twentyFourHour bool) [][]string {
	data := make([][]string, 0, len(sessions)+1)

	data = append(data, []string{
		"#",
		"DATE",
		"STARTED",
		"ENDED",
		"DURATION",
	})

	for i, s := range sessions {
		ended := "-"
		if end, ok := s.EndTime(); ok {
			ended = timeutil.Clock(end, twentyFourHour)
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Date,
			timeutil.Clock(s.StartTime(), twentyFourHour),
			ended,
			ledger.FormatDuration(s.Duration),
		})
	}

	return data
}

// listSessions prints the sessions as a table, or a notice when there are
// none.
func listSessions(w io.Writer, sessions []ledger.Session, twentyFourHour bool) error {
	if len(sessions) == 0 {
		pterm.Info.WithWriter(w).Println(noSessionsMsg)
		return nil
	}

	return ui.PrintTable(w, sessionRows(sessions, twentyFourHour))
}
