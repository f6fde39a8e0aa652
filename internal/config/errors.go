package config

import "github.com/ayoisaiah/worktime/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidInterval = &apperr.Error{
		Message: "report interval must be between %v and %v, got %v",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend %q (must be text or bolt)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level %q (must be debug, info, warn, or error)",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max_size_mb must be at least 1, got %d",
	}
)
