package service

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
)

// CountdownResolver is what the refresher calls on every tick.
// *CountdownService satisfies it.
type CountdownResolver interface {
	Current() domain.Countdown
}

// CountdownRefresher re-resolves the countdown on a fixed period and keeps
// the latest result. Each tick recomputes from the real clock, so a late or
// skipped tick corrects itself on the next one.
//
// The refresher owns its cron handle: Start arms it, Stop disarms it and
// waits for a running tick, after which the resolver is never called again.
type CountdownRefresher struct {
	resolver CountdownResolver
	interval time.Duration
	log      *slog.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	latest atomic.Pointer[domain.Countdown]
}

// ErrRefresherRunning is returned by Start when the refresher is already armed.
var ErrRefresherRunning = errors.New("countdown refresher already running")

// NewCountdownRefresher constructs a stopped refresher. Intervals below one
// second are raised to one second (cron's resolution).
func NewCountdownRefresher(resolver CountdownResolver, interval time.Duration, log *slog.Logger) *CountdownRefresher {
	if interval < time.Second {
		interval = time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &CountdownRefresher{resolver: resolver, interval: interval, log: log}
}

// Start resolves once immediately, then every interval.
func (r *CountdownRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return ErrRefresherRunning
	}

	r.tick()

	logger := cronLogger{log: r.log}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(cron.Every(r.interval), cron.FuncJob(r.tick))
	c.Start()
	r.cron = c

	r.log.Info("countdown refresher started", "interval", r.interval.String())
	return nil
}

// Stop disarms the schedule and blocks until an in-flight tick has returned.
// Calling Stop on a stopped refresher is a no-op.
func (r *CountdownRefresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.cron = nil
	r.log.Info("countdown refresher stopped")
}

// Latest returns the most recent countdown. ok is false until the first
// resolution has happened.
func (r *CountdownRefresher) Latest() (countdown domain.Countdown, ok bool) {
	p := r.latest.Load()
	if p == nil {
		return domain.Countdown{}, false
	}
	return *p, true
}

func (r *CountdownRefresher) tick() {
	c := r.resolver.Current()
	r.latest.Store(&c)
	r.log.Debug("countdown resolved",
		"phase", string(c.Phase),
		"active_segment", c.ActiveSegment,
		"message", c.Message(),
	)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
