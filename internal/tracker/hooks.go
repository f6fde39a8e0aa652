package tracker

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
)

const sessionCmdTimeout = 30 * time.Second

// runSessionCmd executes the specified command without a shell.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionCmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	return nil
}

// logReporter sends tracker events to the default slog logger. It is used
// when no Reporter is configured.
type logReporter struct{}

func (logReporter) Started(r Report) {
	slog.Info("session started", reportAttrs(r)...)
}

func (logReporter) Progress(r Report) {
	slog.Info("session progress", reportAttrs(r)...)
}

func (logReporter) Summary(r Report) {
	slog.Info("session summary", reportAttrs(r)...)
}

func (logReporter) Saved(path string, err error) {
	if err != nil {
		slog.Error("failed to save data", slog.String("path", path), slog.Any("error", err))
		return
	}

	slog.Info("data saved", slog.String("path", path))
}

func reportAttrs(r Report) []any {
	return []any{
		slog.String("date", r.Date),
		slog.Uint64("started_at", r.StartedAt),
		slog.Uint64("elapsed", r.Elapsed),
		slog.Uint64("today", r.Today),
		slog.Uint64("all_time", r.AllTime),
		slog.Int("sessions", r.Sessions),
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
