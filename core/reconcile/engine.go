package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"status-notifier/core/lock"
	"status-notifier/core/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Deps bundles the collaborators of an Engine.
type Deps struct {
	Fetcher     Fetcher
	Instances   InstanceStore
	Subscribers SubscriberStore
	Composer    Composer
	Sender      Sender

	// Archiver is optional.
	Archiver Archiver

	// Locker defaults to an in-process lock.
	Locker lock.Locker
}

// Engine runs reconciliation cycles.
type Engine struct {
	deps        Deps
	concurrency int
	logger      *zap.Logger
	tracer      trace.Tracer
	now         func() time.Time

	mu   sync.RWMutex
	last *Summary
}

// NewEngine creates an engine. Collaborators other than Archiver and Locker
// must be non-nil.
func NewEngine(deps Deps, opts Options, logger *zap.Logger) *Engine {
	if deps.Locker == nil {
		deps.Locker = lock.NewLocal()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Engine{
		deps:        deps,
		concurrency: concurrency,
		logger:      logger,
		tracer:      otel.Tracer("status-notifier/core/reconcile"),
		now:         time.Now,
	}
}

// LastSummary returns the summary of the most recent completed or failed cycle.
func (e *Engine) LastSummary() (Summary, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.last == nil {
		return Summary{}, false
	}
	return *e.last, true
}

// RunCycle executes one full cycle. It returns ErrCycleInProgress without
// doing anything when another cycle holds the lock. A returned non-nil error
// other than that means the cycle failed; per-record and per-subscriber
// failures are reported through the summary only.
func (e *Engine) RunCycle(ctx context.Context) (Summary, error) {
	release, ok, err := e.deps.Locker.TryLock(ctx)
	if err != nil {
		return Summary{Phase: PhaseFailed, Error: err.Error()}, err
	}
	if !ok {
		return Summary{}, ErrCycleInProgress
	}
	defer release()

	ctx, span := e.tracer.Start(ctx, "reconcile.cycle")
	defer span.End()

	summary := &Summary{StartedAt: e.now()}
	e.logger.Info("Cycle started")

	err = e.run(ctx, summary)
	summary.Duration = e.now().Sub(summary.StartedAt)

	span.SetAttributes(
		attribute.Int("fetched", summary.Fetched),
		attribute.Int("upserted", summary.Upserted),
		attribute.Int("changed", summary.Changed),
		attribute.Int("notified", summary.Notified),
		attribute.Int("failed", summary.Failed),
	)

	if err != nil {
		summary.FailedIn = summary.Phase
		summary.Phase = PhaseFailed
		summary.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("Cycle failed",
			zap.String("phase", string(summary.FailedIn)),
			zap.Duration("duration", summary.Duration),
			zap.Error(err),
		)
	} else {
		summary.Phase = PhaseDone
		e.logger.Info("Cycle completed",
			zap.Int("fetched", summary.Fetched),
			zap.Int("upserted", summary.Upserted),
			zap.Int("persist_failures", summary.PersistFailures),
			zap.Int("changed", summary.Changed),
			zap.Int("notified", summary.Notified),
			zap.Int("failed", summary.Failed),
			zap.Duration("duration", summary.Duration),
		)
	}

	e.mu.Lock()
	done := *summary
	e.last = &done
	e.mu.Unlock()

	return done, err
}

func (e *Engine) run(ctx context.Context, summary *Summary) error {
	e.enter(summary, PhaseFetching)
	snap, err := e.deps.Fetcher.Fetch(ctx)
	if err != nil {
		return &FetchError{Err: err}
	}
	summary.Fetched = len(snap.Instances)
	e.logger.Info("Fetched instances from remote", zap.Int("count", summary.Fetched))
	e.archive(ctx, snap)

	e.enter(summary, PhaseReconciling)
	stored, err := e.deps.Instances.FindAll(ctx)
	if err != nil {
		return &LoadError{Source: "instances", Err: err}
	}
	e.logger.Info("Fetched instances from local store", zap.Int("count", len(stored)))

	result := Reconcile(snap.Instances, IndexByKey(stored))
	if result.EmptyKeys > 0 {
		e.logger.Warn("Remote records without key are stored as new instances", zap.Int("count", result.EmptyKeys))
	}

	e.enter(summary, PhasePersisting)
	saved := e.persist(ctx, result.Upserts, summary)
	changes := result.Surviving(saved)
	summary.Changed = len(changes)
	e.logger.Info("Local instances updated",
		zap.Int("upserted", summary.Upserted),
		zap.Int("changed", summary.Changed),
	)

	if len(changes) == 0 {
		return nil
	}

	e.enter(summary, PhaseResolving)
	subscribers, err := e.deps.Subscribers.FindAll(ctx)
	if err != nil {
		return &LoadError{Source: "subscribers", Err: err}
	}
	notifications := Resolve(changes, subscribers)

	e.enter(summary, PhaseNotifying)
	e.dispatch(ctx, notifications, summary)
	return nil
}

func (e *Engine) enter(summary *Summary, phase Phase) {
	summary.Phase = phase
	e.logger.Debug("Cycle phase", zap.String("phase", string(phase)))
}

func (e *Engine) archive(ctx context.Context, snap *Snapshot) {
	if e.deps.Archiver == nil {
		return
	}
	if err := e.deps.Archiver.Archive(ctx, snap); err != nil {
		e.logger.Warn("Failed to archive remote snapshot", zap.Error(err))
	}
}

// persist saves every upsert in order and reports which ones succeeded.
func (e *Engine) persist(ctx context.Context, upserts []models.Instance, summary *Summary) []bool {
	saved := make([]bool, len(upserts))
	for i := range upserts {
		rec := &upserts[i]
		prevID := rec.ID
		if err := e.deps.Instances.Save(ctx, rec); err != nil {
			summary.PersistFailures++
			e.logger.Warn("Skipping instance after failed save",
				zap.String("key", rec.Key),
				zap.Error(&PersistenceError{Key: rec.Key, Err: err}),
			)
			continue
		}
		saved[i] = true
		summary.Upserted++
		if prevID == 0 {
			e.logger.Debug("New instance saved locally", zap.String("key", rec.Key), zap.String("status", rec.Status))
		} else {
			e.logger.Debug("Updated instance status", zap.String("key", rec.Key), zap.String("status", rec.Status))
		}
	}
	return saved
}

// dispatch composes and sends one message per notification. Failures are
// isolated per subscriber.
func (e *Engine) dispatch(ctx context.Context, notifications []Notification, summary *Summary) {
	var notified, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for _, n := range notifications {
		g.Go(func() error {
			if err := e.deliver(ctx, n); err != nil {
				failed.Add(1)
				e.logger.Error("Notification failed",
					zap.Uint("subscriber_id", n.Subscriber.ID),
					zap.String("email", n.Subscriber.Email),
					zap.Error(err),
				)
				return nil
			}
			notified.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	summary.Notified = int(notified.Load())
	summary.Failed = int(failed.Load())
}

func (e *Engine) deliver(ctx context.Context, n Notification) error {
	msg, err := e.deps.Composer.Compose(n.Subscriber, n.Instances)
	if err != nil {
		return &CompositionError{SubscriberID: n.Subscriber.ID, Err: err}
	}

	e.logger.Debug("Sending notification",
		zap.String("to", msg.To),
		zap.Int("instances", len(n.Instances)),
		zap.String("body", msg.Body),
	)

	if err := e.deps.Sender.Send(ctx, msg); err != nil {
		return &DeliveryError{To: msg.To, Err: err}
	}
	return nil
}

// IsCycleInProgress reports whether err signals an overlapping trigger.
func IsCycleInProgress(err error) bool {
	return errors.Is(err, ErrCycleInProgress)
}
