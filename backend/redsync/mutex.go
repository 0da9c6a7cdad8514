// Package redsync backs lock levels with Redis-based distributed mutexes.
// Acquisition suspends on ctx while contending with other processes.
package redsync

import (
	"context"
	"fmt"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis"
	goredispool "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	redigopool "github.com/go-redsync/redsync/v4/redis/redigo"
	redigo "github.com/gomodule/redigo/redis"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ezraisw/lockorder/backend"
)

type redsyncMutex struct {
	mu *redsync.Mutex
}

// NewMutex returns a distributed mutex named name. The name must be unique
// per lock level across all processes sharing the Redis pools.
func NewMutex(name string, pools ...redis.Pool) backend.Mutex {
	return &redsyncMutex{mu: redsync.New(pools...).NewMutex(name)}
}

func (m *redsyncMutex) Lock(ctx context.Context) error {
	if err := m.mu.LockContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	return nil
}

func (m *redsyncMutex) Unlock(ctx context.Context) error {
	ok, err := m.mu.UnlockContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedUnlock, err)
	}
	if !ok {
		return backend.ErrFailedUnlock
	}
	return nil
}

// NewGoredisPool adapts a go-redis client for use with NewMutex.
func NewGoredisPool(client goredis.UniversalClient) redis.Pool {
	return goredispool.NewPool(client)
}

// NewRedigoPool adapts a redigo connection pool for use with NewMutex.
func NewRedigoPool(pool *redigo.Pool) redis.Pool {
	return redigopool.NewPool(pool)
}
