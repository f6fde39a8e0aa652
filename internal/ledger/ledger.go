// Package ledger models completed work sessions and the running total of
// time spent across all of them
package ledger

import (
	"fmt"
	"time"
)

const (
	secondsInADay    = 86400
	secondsInAnHour  = 3600
	secondsInAMinute = 60
	daysInAYear      = 365
	daysInAMonth     = 30
	epochYear        = 1970
)

// Session represents one completed work interval.
type Session struct {
	// End is nil when the end of the interval was not recorded.
	End *uint64 `json:"end,omitempty"`
	// Date is the day bucket the session is attributed to.
	Date string `json:"date"`
	// Start is the wall-clock time the session began in seconds since the
	// Unix epoch.
	Start uint64 `json:"start"`
	// Duration is the measured length of the session in seconds. It comes
	// from the monotonic clock so it may differ from End - Start.
	Duration uint64 `json:"duration"`
}

// NewSession returns a completed session.
func NewSession(date string, start, end, duration uint64) Session {
	return Session{
		Date:     date,
		Start:    start,
		End:      &end,
		Duration: duration,
	}
}

// StartTime returns the session start as a UTC time.
func (s Session) StartTime() time.Time {
	return time.Unix(int64(s.Start), 0).UTC()
}

// EndTime returns the session end as a UTC time and whether one was recorded.
func (s Session) EndTime() (time.Time, bool) {
	if s.End == nil {
		return time.Time{}, false
	}

	return time.Unix(int64(*s.End), 0).UTC(), true
}

// Ledger is the durable record of all completed sessions.
type Ledger struct {
	Sessions []Session `json:"sessions"`
	// Total is kept up to date on every append and is authoritative. It is
	// never derived from Sessions.
	Total uint64 `json:"total_seconds"`
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		Sessions: []Session{},
	}
}

// AddSession appends s and adds its duration to the running total.
func (l *Ledger) AddSession(s Session) {
	l.Sessions = append(l.Sessions, s)
	l.Total += s.Duration
}

// Len returns the number of recorded sessions.
func (l *Ledger) Len() int {
	return len(l.Sessions)
}

// Sum adds up the durations of every recorded session. It exists to detect
// a stored total that disagrees with the sessions on disk.
func (l *Ledger) Sum() uint64 {
	var sum uint64
	for _, s := range l.Sessions {
		sum += s.Duration
	}

	return sum
}

// TotalOn returns the time recorded against the given day bucket.
func (l *Ledger) TotalOn(date string) uint64 {
	var total uint64

	for _, s := range l.Sessions {
		if s.Date == date {
			total += s.Duration
		}
	}

	return total
}

// TodayTotal returns the time recorded against the day bucket of now.
func (l *Ledger) TodayTotal(now time.Time) uint64 {
	return l.TotalOn(DateOf(now))
}

// CurrentDate returns the day bucket for the current time.
func CurrentDate() string {
	return DateOf(time.Now())
}

// DateOf returns the YYYY-MM-DD day bucket for t.
//
// Days are counted in UTC from the Unix epoch, with 365-day years and
// 30-day months. Leap years and real month lengths are ignored, so the
// label drifts from the calendar date and the month can reach 13. Stored
// ledgers are bucketed with these labels and must keep matching them.
func DateOf(t time.Time) string {
	secs := t.Unix()
	if secs < 0 {
		secs = 0
	}

	days := secs / secondsInADay
	years := days / daysInAYear
	remaining := days % daysInAYear
	month := remaining/daysInAMonth + 1
	day := remaining%daysInAMonth + 1

	return fmt.Sprintf("%04d-%02d-%02d", epochYear+years, month, day)
}

// FormatDuration renders seconds as "Hh Mm Ss", leaving out leading zero
// components.
func FormatDuration(seconds uint64) string {
	hours := seconds / secondsInAnHour
	minutes := (seconds % secondsInAnHour) / secondsInAMinute
	secs := seconds % secondsInAMinute

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
