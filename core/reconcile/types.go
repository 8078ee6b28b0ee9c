package reconcile

import (
	"context"
	"time"

	"status-notifier/core/models"
	"status-notifier/core/notify"
)

// Snapshot is one retrieval of the remote instance list.
type Snapshot struct {
	// Instances are the decoded remote records, in source order.
	Instances []models.Instance

	// Raw is the undecoded payload, kept for archiving.
	Raw []byte

	// FetchedAt is when the payload was received.
	FetchedAt time.Time
}

// Fetcher retrieves the authoritative remote state.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// InstanceStore persists instances.
type InstanceStore interface {
	FindAll(ctx context.Context) ([]models.Instance, error)
	// Save inserts the instance when its ID is zero and updates it otherwise.
	// On insert the assigned ID is written back into inst.
	Save(ctx context.Context, inst *models.Instance) error
}

// SubscriberStore reads subscribers. The engine never writes them.
type SubscriberStore interface {
	FindAll(ctx context.Context) ([]models.Subscriber, error)
}

// Composer turns a subscriber and their changed instances into a message.
type Composer interface {
	Compose(sub models.Subscriber, instances []models.Instance) (notify.Message, error)
}

// Sender delivers a composed message.
type Sender interface {
	Send(ctx context.Context, msg notify.Message) error
}

// Archiver keeps a copy of every fetched payload. Optional.
type Archiver interface {
	Archive(ctx context.Context, snap *Snapshot) error
}

// Phase is a step of the cycle state machine.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseFetching    Phase = "fetching"
	PhaseReconciling Phase = "reconciling"
	PhasePersisting  Phase = "persisting"
	PhaseResolving   Phase = "resolving"
	PhaseNotifying   Phase = "notifying"
	PhaseDone        Phase = "done"
	PhaseFailed      Phase = "failed"
)

// Summary reports the outcome of one cycle.
type Summary struct {
	// Phase is the terminal phase: done or failed.
	Phase Phase `json:"phase"`

	// FailedIn is the phase the cycle was in when it failed.
	FailedIn Phase `json:"failed_in,omitempty"`

	// Error is the failure message of a failed cycle.
	Error string `json:"error,omitempty"`

	// Fetched counts remote records received.
	Fetched int `json:"fetched"`

	// Upserted counts records successfully saved.
	Upserted int `json:"upserted"`

	// PersistFailures counts records whose save failed.
	PersistFailures int `json:"persist_failures"`

	// Changed counts persisted status changes eligible for notification.
	Changed int `json:"changed"`

	// Notified counts subscribers whose message was delivered.
	Notified int `json:"notified"`

	// Failed counts subscribers whose message could not be composed or delivered.
	Failed int `json:"failed"`

	// StartedAt is when the cycle acquired the lock.
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall time of the cycle.
	Duration time.Duration `json:"duration"`
}

// Options controls engine behavior.
type Options struct {
	// Concurrency bounds parallel notification deliveries.
	Concurrency int `mapstructure:"concurrency" default:"4"`
}
