package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/worktime/internal/config"
	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/logging"
	"github.com/ayoisaiah/worktime/internal/pathutil"
	"github.com/ayoisaiah/worktime/internal/store"
	"github.com/ayoisaiah/worktime/internal/tracker"
	"github.com/ayoisaiah/worktime/internal/ui"
	"github.com/ayoisaiah/worktime/monitor"
	"github.com/ayoisaiah/worktime/report"
)

const (
	envNoColor         = "NO_COLOR"
	envWorktimeNoColor = "WORKTIME_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves file locations, reads the config file and applies
// command-line overrides. It also installs the default slog logger. The
// returned function closes the log file.
func loadConfig(ctx *cli.Context) (*config.Config, func(), error) {
	paths, err := pathutil.New()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFilePath()),
		config.WithCLIConfig(ctx),
		config.WithPaths(paths),
	)
	if err != nil {
		return nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Display.NoColor {
		ui.DisableStyling()
	}

	// Validate has already rejected unknown levels
	level, _ := config.ParseLogLevel(cfg.Log.Level)

	logger, w := logging.New(logging.Options{
		Path:       cfg.System.LogPath,
		Level:      level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	slog.SetDefault(logger)

	return cfg, func() { _ = w.Close() }, nil
}

// loadLedger reads the persisted ledger without starting a session.
func loadLedger(ctx *cli.Context) (*ledger.Ledger, *config.Config, error) {
	cfg, closeLog, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	defer closeLog()

	s, err := store.Open(store.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}

	defer s.Close()

	return s.Load(), cfg, nil
}

// trackAction handles the track command (and the default action). It runs a
// tracker until the process is interrupted or the live view is closed, then
// saves the session.
func trackAction(ctx *cli.Context) error {
	cfg, closeLog, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer closeLog()

	s, err := store.Open(store.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return err
	}

	console := report.NewConsole(os.Stdout, cfg.Tracker.Notify)
	console.Quiet = cfg.Tracker.Live

	t := tracker.New(
		s,
		tracker.WithReporter(console),
		tracker.WithReportInterval(cfg.Tracker.ReportInterval),
		tracker.WithSessionCmd(cfg.Tracker.SessionCmd),
	)

	if err = t.Start(); err != nil {
		_ = t.Shutdown()
		return err
	}

	if cfg.Tracker.Live {
		runLive(ctx.Context, t, cfg)
	} else {
		waitForSignal(ctx.Context)
	}

	// save failures are reported by the console and logged
	if err := t.Shutdown(); err != nil {
		slog.ErrorContext(
			ctx.Context,
			"session shutdown completed with errors",
			slog.Any("error", err),
		)
	}

	return nil
}

// waitForSignal blocks until the process receives SIGINT or SIGTERM.
func waitForSignal(parent context.Context) {
	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	fmt.Println()
}

// runLive shows the full-screen view of the running session until the user
// quits it.
func runLive(ctx context.Context, t *tracker.Tracker, cfg *config.Config) {
	m := monitor.New(
		t,
		monitor.DefaultStyle(cfg.Display.DarkTheme),
		cfg.Display.TwentyFourHour,
	)

	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		slog.WarnContext(ctx, "live view stopped", slog.Any("error", err))
	}
}

// statsAction prints the totals of the persisted ledger.
func statsAction(ctx *cli.Context) error {
	l, _, err := loadLedger(ctx)
	if err != nil {
		return err
	}

	st := computeStats(l, timeNow())

	if ctx.Bool("json") {
		b, err := st.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	return printStats(os.Stdout, st)
}

// listAction prints a table of the recorded sessions.
func listAction(ctx *cli.Context) error {
	l, cfg, err := loadLedger(ctx)
	if err != nil {
		return err
	}

	sessions := l.Sessions

	if since := ctx.String("since"); since != "" {
		t, err := parseSince(since)
		if err != nil {
			return err
		}

		sessions = filterSince(sessions, t)
	}

	if ctx.Bool("json") {
		b, err := sessionsJSON(sessions)
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	return listSessions(os.Stdout, sessions, cfg.Display.TwentyFourHour)
}

// editConfigAction handles the edit-config command which opens the worktime
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, closeLog, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defer closeLog()

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	if _, exists := os.LookupEnv(envWorktimeNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	return nil
}
