// Package tracker times the current work session, reports running totals
// and records the session in the ledger when the host shuts down
package tracker

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/store"
)

const DefaultReportInterval = 10 * time.Minute

// State is a step in the tracker lifecycle. The only transitions are
// Starting -> Running -> Finalized.
type State int

const (
	Starting State = iota
	Running
	Finalized
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Report holds the running totals at a point in time. While the tracker is
// running, the current session is included in Today, AllTime and Sessions.
type Report struct {
	Date string `json:"date"`
	// StartedAt is the wall-clock start of the session in seconds since the
	// Unix epoch.
	StartedAt uint64 `json:"started_at"`
	Elapsed   uint64 `json:"elapsed_seconds"`
	Today     uint64 `json:"today_seconds"`
	AllTime   uint64 `json:"all_time_seconds"`
	Sessions  int    `json:"sessions"`
}

// Reporter receives tracker events.
type Reporter interface {
	Started(r Report)
	Progress(r Report)
	Summary(r Report)
	Saved(path string, err error)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithReporter sets the destination of tracker events.
func WithReporter(r Reporter) Option {
	return func(t *Tracker) {
		t.reporter = r
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithReportInterval sets how often progress is reported once the tracker
// is started.
func WithReportInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.interval = d
	}
}

// WithSessionCmd sets a command that runs after the session is saved.
func WithSessionCmd(cmd string) Option {
	return func(t *Tracker) {
		t.sessionCmd = cmd
	}
}

// Tracker coordinates the current session. A single mutex guards the ledger,
// the store and the lifecycle state, and is held for the whole of every
// report and for Finalize including the save.
type Tracker struct {
	mu           sync.Mutex
	shutdownOnce sync.Once
	shutdownErr  error

	store    store.Store
	ledger   *ledger.Ledger
	reporter Reporter
	now      func() time.Time
	// session is the record appended by Finalize
	session *ledger.Session
	cron    *cron.Cron

	// start carries the monotonic clock reading used for elapsed time
	start          time.Time
	startTimestamp uint64
	interval       time.Duration
	sessionCmd     string
	state          State
	// stopping is set once Shutdown begins; Start refuses to schedule after
	// that.
	stopping bool
}

// New starts timing a session and loads the ledger from s. The tracker
// takes ownership of s and closes it on Shutdown.
func New(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:    s,
		reporter: logReporter{},
		now:      time.Now,
		interval: DefaultReportInterval,
		state:    Starting,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.start = t.now()
	t.startTimestamp = epochSeconds(t.start)
	t.ledger = s.Load()
	t.state = Running

	t.reporter.Started(Report{
		Date:      ledger.DateOf(t.start),
		StartedAt: t.startTimestamp,
		Today:     t.ledger.TodayTotal(t.start),
		AllTime:   t.ledger.Total,
		Sessions:  t.ledger.Len(),
	})

	return t
}

// Start schedules periodic progress reports on a background goroutine.
// Calling Start more than once has no effect. Once Shutdown has begun it
// returns ErrFinalized.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Finalized || t.stopping {
		return ErrFinalized
	}

	if t.cron != nil {
		return nil
	}

	logger := cronLogger{}

	t.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	t.cron.Schedule(cron.Every(t.interval), cron.FuncJob(func() {
		t.PeriodicReport()
	}))

	t.cron.Start()

	slog.Debug("periodic reports scheduled", slog.Duration("interval", t.interval))

	return nil
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// ElapsedSeconds returns the whole seconds elapsed since New on the
// monotonic clock. After Finalize it returns the recorded duration.
func (t *Tracker) ElapsedSeconds() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Finalized && t.session != nil {
		return t.session.Duration
	}

	return t.elapsedAt(t.now())
}

// Snapshot returns the current totals without reporting them.
func (t *Tracker) Snapshot() Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshot()
}

// PeriodicReport computes and reports the current totals. The ledger is not
// modified.
func (t *Tracker) PeriodicReport() Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.snapshot()

	t.reporter.Progress(r)

	return r
}

// Summary computes and reports the totals including a session count that
// counts the session in progress.
func (t *Tracker) Summary() Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	r := t.snapshot()

	t.reporter.Summary(r)

	return r
}

// Finalize records the current session in the ledger and saves it. It runs
// at most once: later calls return ErrFinalized and change nothing. A failed
// save is returned, but the session stays in the in-memory ledger.
func (t *Tracker) Finalize() (ledger.Session, error) {
	t.mu.Lock()

	if t.state != Running {
		t.mu.Unlock()
		return ledger.Session{}, ErrFinalized
	}

	now := t.now()

	sess := ledger.NewSession(
		ledger.DateOf(now),
		t.startTimestamp,
		epochSeconds(now),
		t.elapsedAt(now),
	)

	t.ledger.AddSession(sess)
	t.session = &sess
	t.state = Finalized

	err := t.store.Save(t.ledger)

	t.reporter.Saved(t.store.Path(), err)

	t.mu.Unlock()

	if err != nil {
		slog.Error(
			"session could not be saved",
			slog.String("path", t.store.Path()),
			slog.Any("error", err),
		)

		return sess, err
	}

	slog.Info(
		"session saved",
		slog.String("date", sess.Date),
		slog.Uint64("duration", sess.Duration),
	)

	if err := runSessionCmd(t.sessionCmd); err != nil {
		slog.Warn("session command failed", slog.Any("error", err))
	}

	return sess, nil
}

// Shutdown stops periodic reports, prints the summary, records the session
// and closes the store. It is safe to call more than once; only the first
// call does any work and later calls return its result.
func (t *Tracker) Shutdown() error {
	t.shutdownOnce.Do(func() {
		t.stopScheduler()

		if t.State() == Running {
			t.Summary()
		}

		_, err := t.Finalize()
		if errors.Is(err, ErrFinalized) {
			err = nil
		}

		if cerr := t.store.Close(); cerr != nil && err == nil {
			err = cerr
		}

		t.shutdownErr = err
	})

	return t.shutdownErr
}

// stopScheduler stops the cron scheduler and waits for a running report to
// return. No scheduler can be started afterwards. The tracker lock must not
// be held.
func (t *Tracker) stopScheduler() {
	t.mu.Lock()
	t.stopping = true
	c := t.cron
	t.mu.Unlock()

	if c == nil {
		return
	}

	<-c.Stop().Done()
}

// snapshot must be called with the lock held.
func (t *Tracker) snapshot() Report {
	now := t.now()

	if t.state == Finalized && t.session != nil {
		return Report{
			Date:      t.session.Date,
			StartedAt: t.session.Start,
			Elapsed:   t.session.Duration,
			Today:     t.ledger.TodayTotal(now),
			AllTime:   t.ledger.Total,
			Sessions:  t.ledger.Len(),
		}
	}

	elapsed := t.elapsedAt(now)

	return Report{
		Date:      ledger.DateOf(now),
		StartedAt: t.startTimestamp,
		Elapsed:   elapsed,
		Today:     t.ledger.TodayTotal(now) + elapsed,
		AllTime:   t.ledger.Total + elapsed,
		Sessions:  t.ledger.Len() + 1,
	}
}

func (t *Tracker) elapsedAt(now time.Time) uint64 {
	d := now.Sub(t.start)
	if d < 0 {
		return 0
	}

	return uint64(d / time.Second)
}

func epochSeconds(t time.Time) uint64 {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}

	return uint64(secs)
}
