package lock

import (
	"context"
	"sync"
)

// Locker grants exclusive, non-blocking access to a named critical section.
type Locker interface {
	// TryLock attempts to acquire the lock. When ok is true the caller must
	// invoke release exactly once. When ok is false release is nil.
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// Config holds configuration for the cycle lock.
type Config struct {
	// RedisAddr is a redis:// URL. Empty selects the in-process lock.
	RedisAddr string `mapstructure:"redis_addr" default:""`
	// Key is the Redis key used for the lock.
	Key string `mapstructure:"key" default:"status-notifier:cycle"`
	// TTLSeconds bounds how long a crashed holder can keep the lock.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"600"`
}

// Local is an in-process Locker.
type Local struct {
	mu sync.Mutex
}

// NewLocal creates an unlocked in-process lock.
func NewLocal() *Local {
	return &Local{}
}

// TryLock implements Locker.
func (l *Local) TryLock(ctx context.Context) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func() { once.Do(l.mu.Unlock) }, true, nil
}
