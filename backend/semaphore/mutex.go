// Package semaphore backs lock levels with weighted semaphores. Acquisition
// suspends on ctx instead of blocking the goroutine; a cancelled acquisition
// returns an error without holding the primitive.
package semaphore

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/ezraisw/lockorder/backend"
)

type semMutex struct {
	w *semaphore.Weighted
}

func NewMutex() backend.Mutex {
	return &semMutex{w: semaphore.NewWeighted(1)}
}

func (m *semMutex) Lock(ctx context.Context) error {
	if err := m.w.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	return nil
}

func (m *semMutex) Unlock(ctx context.Context) error {
	m.w.Release(1)
	return nil
}

type semRWMutex struct {
	w       *semaphore.Weighted
	readers int64
}

// NewRWMutex returns a read/write mutex allowing up to maxReaders concurrent
// readers. A writer acquires the whole reader quota.
func NewRWMutex(maxReaders int64) backend.RWMutex {
	if maxReaders < 1 {
		panic("lockorder: semaphore rwmutex needs at least one reader slot")
	}
	return &semRWMutex{w: semaphore.NewWeighted(maxReaders), readers: maxReaders}
}

func (m *semRWMutex) Lock(ctx context.Context) error {
	if err := m.w.Acquire(ctx, m.readers); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	return nil
}

func (m *semRWMutex) Unlock(ctx context.Context) error {
	m.w.Release(m.readers)
	return nil
}

func (m *semRWMutex) RLock(ctx context.Context) error {
	if err := m.w.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	return nil
}

func (m *semRWMutex) RUnlock(ctx context.Context) error {
	m.w.Release(1)
	return nil
}
