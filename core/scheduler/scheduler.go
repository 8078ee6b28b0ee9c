package scheduler

import (
	"context"
	"fmt"
	"time"

	"status-notifier/core/reconcile"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner runs one reconciliation cycle.
type Runner interface {
	RunCycle(ctx context.Context) (reconcile.Summary, error)
}

// Scheduler triggers cycles on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	entry    cron.EntryID
	runner   Runner
	logger   *zap.Logger
	schedule string

	ctx    context.Context
	cancel context.CancelFunc
}

// New parses schedule and registers the cycle job. Nothing runs until Start.
func New(schedule string, runner Runner, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		runner:   runner,
		logger:   logger,
		schedule: schedule,
		ctx:      ctx,
		cancel:   cancel,
	}

	id, err := s.cron.AddFunc(schedule, s.tick)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	s.entry = id
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started",
		zap.String("schedule", s.schedule),
		zap.Time("next", s.Next()),
	)
}

// Next returns the next planned trigger, or the zero time before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}

// Stop prevents further triggers, cancels the running cycle's context and
// waits for it to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) tick() {
	summary, err := s.runner.RunCycle(s.ctx)
	switch {
	case reconcile.IsCycleInProgress(err):
		s.logger.Info("Cycle already in progress, skipping tick")
	case err != nil:
		// The engine logs the failure itself.
		s.logger.Debug("Scheduled cycle failed", zap.String("phase", string(summary.FailedIn)))
	default:
		s.logger.Debug("Scheduled cycle completed", zap.Int("notified", summary.Notified))
	}
}
