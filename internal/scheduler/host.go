// Package scheduler is C13, the Scheduler Host: a single in-process
// robfig/cron instance driving the engine's four periodic jobs, each
// wrapped in a non-overlap guard.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Cron schedules for the four named jobs (§5).
const (
	DispatcherSchedule = "* * * * *" // every 1 min
	MaintainerSchedule = "0 1 * * *" // daily at 01:00 UTC
	DigestSchedule     = "0 * * * *" // hourly at :00
	SweeperSchedule    = "0 2 * * *" // daily at 02:00 UTC
)

// Job is any periodic task the host can drive.
type Job func(ctx context.Context)

// Host wraps robfig/cron the way the asma-ul-husna-bot example does
// (cron.New(cron.WithLocation(time.UTC)), AddFunc per job, Start/Stop,
// block on ctx.Done()). robfig/cron has no built-in coalescing, so each
// registered job is wrapped in guard(), a non-blocking run guard that
// drops a tick landing while the previous one is still in flight —
// exactly "coalesce missed runs; a later start is dropped" (§5).
type Host struct {
	cron *cron.Cron
	log  *zap.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewHost(log *zap.Logger) *Host {
	return &Host{
		cron: cron.New(cron.WithLocation(time.UTC)),
		log:  log,
	}
}

// Register schedules fn under name and spec with the non-overlap guard
// applied. Call before Start.
func (h *Host) Register(name, spec string, fn Job) error {
	guarded := guard(name, h.log, fn)
	_, err := h.cron.AddFunc(spec, func() {
		h.mu.Lock()
		ctx := h.ctx
		h.mu.Unlock()
		if ctx == nil {
			return
		}
		h.wg.Add(1)
		defer h.wg.Done()
		guarded(ctx)
	})
	return err
}

// Start begins the cron scheduler. Ticks share a context derived from
// parent, cancelled when Stop is called.
func (h *Host) Start(parent context.Context) {
	h.mu.Lock()
	h.ctx, h.cancel = context.WithCancel(parent)
	h.mu.Unlock()

	h.cron.Start()
	h.log.Info("scheduler host started")
}

// Stop halts the cron scheduler and blocks until every job goroutine
// currently running has returned (§5 "process shutdown waits for the
// in-flight tick of each job"), then cancels the shared tick context.
func (h *Host) Stop() {
	stopCtx := h.cron.Stop()
	<-stopCtx.Done()

	h.mu.Lock()
	cancel := h.cancel
	h.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	h.wg.Wait()
	h.log.Info("scheduler host stopped")
}

// guard returns fn wrapped so a tick that finds the previous run still
// executing returns immediately instead of running concurrently.
func guard(name string, log *zap.Logger, fn Job) Job {
	var running int32
	return func(ctx context.Context) {
		if !atomic.CompareAndSwapInt32(&running, 0, 1) {
			log.Warn("tick skipped, previous run still in flight", zap.String("job", name))
			return
		}
		defer atomic.StoreInt32(&running, 0)

		start := time.Now()
		fn(ctx)
		log.Debug("job tick complete", zap.String("job", name), zap.Duration("elapsed", time.Since(start)))
	}
}
