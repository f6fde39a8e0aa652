// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/worktime/internal/apperr"
)

var errParsingDate = &apperr.Error{
	Message: "unable to understand the date %q (try YYYY-MM-DD or '3 days ago')",
}

// FromStr parses an absolute or relative date such as "2024-01-05" or
// "yesterday" relative to the current time.
func FromStr(s string) (time.Time, error) {
	return FromStrAt(s, time.Now())
}

// FromStrAt is FromStr with relative dates resolved against now.
func FromStrAt(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParsingDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Clock formats t as a time of day in the 12 or 24 hour format.
func Clock(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format("15:04:05")
	}

	return t.Format("03:04:05 PM")
}
