package tracker

import "github.com/ayoisaiah/worktime/internal/apperr"

var (
	// ErrFinalized is returned when the session has already been recorded.
	ErrFinalized = &apperr.Error{
		Message: "session already finalized",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to run session command %q",
	}
)
