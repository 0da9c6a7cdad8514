package lockorder

import (
	"github.com/ezraisw/lockorder/backend"
	syncback "github.com/ezraisw/lockorder/backend/sync"
)

type (
	// Mutex holds a value of type T behind a mutual-exclusion primitive at
	// lock level N. The value is only reachable through a guard obtained from
	// Lock or WithLock.
	Mutex[N, T any] struct {
		mu    backend.Mutex
		value T
	}

	// RWMutex holds a value of type T behind a shared-read/exclusive-write
	// primitive at lock level N.
	RWMutex[N, T any] struct {
		mu    backend.RWMutex
		value T
	}
)

// NewMutex wraps value in a Mutex at level N backed by the host sync
// primitive (blocking, infallible).
func NewMutex[N, T any](value T) *Mutex[N, T] {
	return NewMutexBacked[N](value, syncback.NewMutex())
}

// NewMutexBacked wraps value in a Mutex at level N backed by mu. The backend
// decides blocking vs suspending behavior and may fail at runtime; the
// ordering rules do not depend on it.
func NewMutexBacked[N, T any](value T, mu backend.Mutex) *Mutex[N, T] {
	return &Mutex[N, T]{mu: mu, value: value}
}

// NewRWMutex wraps value in an RWMutex at level N backed by the host sync
// primitive.
func NewRWMutex[N, T any](value T) *RWMutex[N, T] {
	return NewRWMutexBacked[N](value, syncback.NewRWMutex())
}

// NewRWMutexBacked wraps value in an RWMutex at level N backed by mu.
func NewRWMutexBacked[N, T any](value T, mu backend.RWMutex) *RWMutex[N, T] {
	return &RWMutex[N, T]{mu: mu, value: value}
}
