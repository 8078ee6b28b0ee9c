// Package lock provides the single-active-cycle guard used by the reconcile
// engine.
//
// A Locker never blocks: TryLock either grants the lock and returns a release
// function, or reports that somebody else holds it. Callers treat "not
// acquired" as "a cycle is already running" and skip their trigger.
//
// Two implementations exist:
//   - Local: an in-process mutex, enough for a single replica.
//   - Redis: SET NX with a TTL, for several replicas sharing one database.
package lock
