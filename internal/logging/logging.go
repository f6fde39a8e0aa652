// Package logging configures the diagnostic log written alongside the
// ledger
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how diagnostic logs are written.
type Options struct {
	Path       string
	Level      slog.Level
	MaxSizeMB  int
	MaxBackups int
}

// New returns a JSON logger writing to a size-rotated file, along with the
// writer so callers can close it on exit.
func New(opts Options) (*slog.Logger, io.WriteCloser) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	return NewWithWriter(w, opts.Level), w
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler).With(slog.String("app", "worktime"))
}
