// Package sync backs lock levels with the host sync primitives. Acquisition
// blocks the calling goroutine and never fails; ctx is ignored.
package sync

import (
	"context"
	"sync"

	"github.com/ezraisw/lockorder/backend"
)

type syncMutex struct {
	mu sync.Mutex
}

func NewMutex() backend.Mutex {
	return &syncMutex{}
}

func (m *syncMutex) Lock(ctx context.Context) error {
	m.mu.Lock()
	return nil
}

func (m *syncMutex) Unlock(ctx context.Context) error {
	m.mu.Unlock()
	return nil
}

type syncRWMutex struct {
	mu sync.RWMutex
}

func NewRWMutex() backend.RWMutex {
	return &syncRWMutex{}
}

func (m *syncRWMutex) Lock(ctx context.Context) error {
	m.mu.Lock()
	return nil
}

func (m *syncRWMutex) Unlock(ctx context.Context) error {
	m.mu.Unlock()
	return nil
}

func (m *syncRWMutex) RLock(ctx context.Context) error {
	m.mu.RLock()
	return nil
}

func (m *syncRWMutex) RUnlock(ctx context.Context) error {
	m.mu.RUnlock()
	return nil
}
