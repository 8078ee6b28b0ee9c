package reconcile

import (
	"errors"
	"fmt"
)

// ErrCycleInProgress is returned by RunCycle when another cycle holds the lock.
var ErrCycleInProgress = errors.New("reconcile: cycle already in progress")

// FetchError means the remote source was unreachable or returned unusable
// data. It aborts the cycle before anything is persisted.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch remote instances: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LoadError means a local store could not be read. It aborts the cycle.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PersistenceError is a failed save of one instance. The record is skipped.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save instance %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// CompositionError is a message that could not be built for one subscriber.
type CompositionError struct {
	SubscriberID uint
	Err          error
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose notification for subscriber %d: %v", e.SubscriberID, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

// DeliveryError is a message that the sender failed to deliver.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver notification to <%s>: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
