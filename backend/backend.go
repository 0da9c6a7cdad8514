// Package backend defines the capability a synchronization primitive must
// provide to sit underneath a lock level. The ordering machinery in the root
// package is agnostic to which implementation is in use.
//
// A backend is blocking if Lock stalls the calling goroutine until the
// primitive is available, or suspending if Lock waits on ctx and returns an
// error when ctx is done. Suspending backends must never leave the primitive
// acquired after returning an error.
package backend

import "context"

type Mutex interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

type RWMutex interface {
	Mutex

	RLock(ctx context.Context) error
	RUnlock(ctx context.Context) error
}
