// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/pkg/locker"
)

// StatsWarmer periodically precomputes journey stats and per-tag counts into
// the cache, with distributed locking so only one instance does the work.
type StatsWarmer struct {
	catalog  *service.CatalogService
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	locker   locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// WarmerConfig holds stats warmer configuration.
type WarmerConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewStatsWarmer creates a new StatsWarmer.
func NewStatsWarmer(
	catalog *service.CatalogService,
	cfg WarmerConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *StatsWarmer {
	return &StatsWarmer{
		catalog:  catalog,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   logger,
		locker:   locker,
	}
}

// Start begins the background warm job.
func (w *StatsWarmer) Start(runOnStartup bool) {
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.logger.Info("starting stats warmer",
		zap.Duration("interval", w.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	w.wg.Add(1)
	go w.run(runOnStartup)
}

// Stop gracefully stops the warmer.
func (w *StatsWarmer) Stop() {
	w.logger.Info("stopping stats warmer")
	w.cancel()
	w.wg.Wait()
	w.logger.Info("stats warmer stopped")
}

// run is the main loop of the warmer.
func (w *StatsWarmer) run(runOnStartup bool) {
	defer w.wg.Done()

	if runOnStartup {
		w.executeWarm()
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.executeWarm()
		}
	}
}

// executeWarm recomputes the stats under a distributed lock.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for full interval to prevent duplicate work
//   - Failure: lock released immediately to allow retry by another instance
func (w *StatsWarmer) executeWarm() {
	const lockKey = "stats:warmer:lock"

	acquired, err := w.locker.Acquire(w.ctx, lockKey, w.interval)
	if err != nil {
		w.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		w.logger.Debug("another instance is warming stats, skipping execution")

		return
	}

	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	defer cancel()

	if err := w.catalog.WarmStats(ctx); err != nil {
		// Release lock immediately on error so another instance can retry.
		if relErr := w.locker.Release(w.ctx, lockKey); relErr != nil {
			w.logger.Error("failed to release lock after warm error", zap.Error(relErr))
		}
		w.logger.Warn("stats warm failed, lock released for retry", zap.Error(err))

		return
	}

	w.logger.Info("stats warmed, lock held for cooldown",
		zap.Duration("cooldown", w.interval),
	)
}
