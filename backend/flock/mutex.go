// Package flock backs lock levels with cross-process file locks. Shared and
// exclusive acquisition retry until the lock is obtained or ctx is done.
package flock

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/ezraisw/lockorder/backend"
)

const retryDelay = 25 * time.Millisecond

type fileMutex struct {
	fl *flock.Flock
}

// New returns a read/write mutex backed by an advisory lock on the file at
// path. The file is created if it does not exist.
func New(path string) backend.RWMutex {
	return &fileMutex{fl: flock.New(path)}
}

func (m *fileMutex) Lock(ctx context.Context) error {
	locked, err := m.fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	if !locked {
		return backend.ErrFailedLock
	}
	return nil
}

func (m *fileMutex) Unlock(ctx context.Context) error {
	if err := m.fl.Unlock(); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedUnlock, err)
	}
	return nil
}

func (m *fileMutex) RLock(ctx context.Context) error {
	locked, err := m.fl.TryRLockContext(ctx, retryDelay)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedLock, err)
	}
	if !locked {
		return backend.ErrFailedLock
	}
	return nil
}

func (m *fileMutex) RUnlock(ctx context.Context) error {
	if err := m.fl.Unlock(); err != nil {
		return fmt.Errorf("%w: %v", backend.ErrFailedUnlock, err)
	}
	return nil
}
