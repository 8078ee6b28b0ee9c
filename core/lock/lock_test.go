package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_TryLock(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok2, err := l.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok2, "second acquire must be refused while held")

	release()
	release() // releasing twice is harmless

	release3, ok3, err := l.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok3)
	release3()
}

func TestLocal_OnlyOneHolder(t *testing.T) {
	l := NewLocal()
	var holders int32
	var wg sync.WaitGroup

	start := make(chan struct{})
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok, _ := l.TryLock(context.Background()); ok {
				atomic.AddInt32(&holders, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), holders)
}

func TestNewRedisClient_InvalidAddr(t *testing.T) {
	_, err := NewRedisClient("localhost:6379")
	assert.Error(t, err)
}

func TestRedis_TryLock(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/0")
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	key := "status-notifier:test:" + t.Name()
	client.Del(ctx, key)
	defer client.Del(context.Background(), key)

	a := NewRedis(client, key, time.Minute)
	b := NewRedis(client, key, time.Minute)

	release, ok, err := a.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = b.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	release()

	releaseB, ok, err := b.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	releaseB()
}
