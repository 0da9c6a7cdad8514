// Package redislock backs lock levels with TTL-leased Redis locks. The lease
// bounds how long a crashed holder can wedge other processes.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"

	"github.com/ezraisw/lockorder/backend"
)

type leaseMutex struct {
	mu      sync.Mutex
	current *redislock.Lock

	lc  *redislock.Client
	key string
	ttl time.Duration
}

// NewMutex returns a distributed mutex leasing the given key for ttl per
// acquisition. The key must be unique per lock level across all processes
// sharing the Redis instance.
func NewMutex(client redislock.RedisClient, key string, ttl time.Duration) backend.Mutex {
	return &leaseMutex{
		lc:  redislock.New(client),
		key: key,
		ttl: ttl,
	}
}

func (m *leaseMutex) Lock(ctx context.Context) error {
	lock, err := m.lc.Obtain(ctx, m.key, m.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.ExponentialBackoff(16*time.Millisecond, 4096*time.Millisecond), 32),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}

	m.mu.Lock()
	m.current = lock
	m.mu.Unlock()
	return nil
}

func (m *leaseMutex) Unlock(ctx context.Context) error {
	m.mu.Lock()
	lock := m.current
	m.current = nil
	m.mu.Unlock()

	if lock == nil {
		return backend.ErrFailedUnlock
	}

	if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return fmt.Errorf("%w: %v", backend.ErrFailedUnlock, err)
	}
	return nil
}
