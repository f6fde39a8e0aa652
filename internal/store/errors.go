package store

import "github.com/ayoisaiah/worktime/internal/apperr"

var (
	errSaveLedger = &apperr.Error{
		Message: "unable to save ledger to %s",
	}

	errInstanceRunning = &apperr.Error{
		Message: "is worktime already running? Only one instance can use the bolt store at a time",
	}

	errOpenBolt = &apperr.Error{
		Message: "unable to open bolt store",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %q",
	}
)
