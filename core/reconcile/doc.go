// Package reconcile implements the poll-diff-notify pipeline that keeps the
// local instance store in step with the remote status source and tells
// subscribers about real status changes.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Reconcile: a pure diff between the freshly fetched instances and the
//    stored ones. It yields the upserts to persist and the subset that are
//    genuine status changes of already known instances.
//
// 2. Resolve: a pure fan-out from changed instances to the subscribers that
//    watch their keys, aggregated per subscriber.
//
// 3. Engine: the orchestrator. One call to RunCycle drives
//    fetching -> reconciling -> persisting -> resolving -> notifying -> done.
//    Only a fetch (or store read) failure aborts the cycle; per-record
//    persistence failures and per-subscriber composition or delivery failures
//    are logged, counted and skipped.
//
// # Concurrency
//
// At most one cycle runs at a time. The Engine owns a lock.Locker and refuses
// an overlapping trigger with ErrCycleInProgress; the next scheduled trigger
// picks up whatever changed in the meantime. Notification delivery fans out
// over subscribers with bounded parallelism and is joined before the cycle
// is marked done.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(reconcile.Deps{
//	    Fetcher:     fetcher,
//	    Instances:   instanceStore,
//	    Subscribers: subscriberStore,
//	    Composer:    notify.NewComposer(cfg.Notify),
//	    Sender:      sender,
//	}, cfg.Reconcile, logger)
//
//	summary, err := engine.RunCycle(ctx)
package reconcile
