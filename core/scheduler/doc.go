// Package scheduler triggers reconciliation cycles on a cron schedule.
//
// Expressions have six fields with seconds first, e.g. "0 */15 * * * *" for
// every fifteen minutes. A tick that finds a cycle still running is skipped;
// the next tick picks up whatever changed in the meantime.
package scheduler
