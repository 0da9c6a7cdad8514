package lockorder

import (
	"context"
)

// LockedAt is the capability required to acquire locks. Its type parameter is
// the level of the innermost lock currently held (or Unlocked), and the
// acquisition functions only advance it along declared relation edges.
//
// A LockedAt belongs to a single goroutine or task and must be threaded
// explicitly through the call graph; it is never shared, copied, or stored.
// While an acquisition made through it is outstanding, only the nested
// context returned by that acquisition may be used; releasing the guard makes
// the enclosing context usable again.
type LockedAt[L any] struct {
	busy    bool
	expired bool
}

// NewUnlocked returns a context holding no locks. Each independent
// acquisition stack (typically: each goroutine, or each task) starts from its
// own NewUnlocked call.
func NewUnlocked() *LockedAt[Unlocked] {
	return &LockedAt[Unlocked]{}
}

func (lt *LockedAt[L]) check() {
	if lt.expired {
		panic("lockorder: use of a context whose guard was already released")
	}
	if lt.busy {
		panic("lockorder: context has an outstanding acquisition; use the nested context it returned")
	}
}

// admit gates every acquisition: the requested level must be declared to
// follow the held level. A missing edge (including the always-missing
// reflexive edge) is a programming error and panics with a *Violation.
func admit[L, N any]() {
	held, requested := levelOf[L](), levelOf[N]()
	if held != requested && global.allows(held, requested) {
		return
	}

	v := &Violation{Held: held, Requested: requested}
	global.reportViolation(v)
	panic(v)
}

// guardState ties a held primitive lock to the contexts around it: the parent
// stays busy and the child stays valid exactly while the guard is unreleased.
type guardState struct {
	released     bool
	parentBusy   *bool
	childBusy    *bool
	childExpired *bool
}

func (s *guardState) grant(parentBusy, childBusy, childExpired *bool) {
	s.parentBusy = parentBusy
	s.childBusy = childBusy
	s.childExpired = childExpired
	*s.parentBusy = true
}

func (s *guardState) value() {
	if s.released {
		panic("lockorder: guard used after release")
	}
}

func (s *guardState) release() {
	if s.released {
		panic("lockorder: guard released twice")
	}
	if *s.childBusy {
		panic("lockorder: guard released while its nested context has an outstanding acquisition")
	}
	s.released = true
	*s.parentBusy = false
	*s.childExpired = true
}

func acquire[L, N any](ctx context.Context, lt *LockedAt[L], lock func(context.Context) error) (*LockedAt[N], *guardState, error) {
	lt.check()
	admit[L, N]()

	// Only a successful acquisition changes any context state: a backend
	// failure leaves the caller valid at its prior level.
	if err := lock(ctx); err != nil {
		return nil, nil, err
	}

	child := &LockedAt[N]{}
	s := &guardState{}
	s.grant(&lt.busy, &child.busy, &child.expired)
	return child, s, nil
}

// MutexGuard owns exclusive access to the value of a Mutex until released.
type MutexGuard[N, T any] struct {
	m *Mutex[N, T]
	s *guardState
}

// Value returns the protected value. The returned pointer must not outlive
// the guard.
func (g *MutexGuard[N, T]) Value() *T {
	g.s.value()
	return &g.m.value
}

// Release unlocks the underlying primitive, invalidates the nested context
// produced alongside this guard, and restores the enclosing context. Any
// error is a backend failure; the lock is considered released regardless.
func (g *MutexGuard[N, T]) Release(ctx context.Context) error {
	g.s.release()
	return g.m.mu.Unlock(ctx)
}

// WithLock acquires the mutex at level N, which must be declared to follow
// the held level L. It returns a context at level N for further nested
// acquisitions together with the guard for the value. Both are tied to the
// guard's release.
//
// Whether the call blocks the goroutine or suspends on ctx is decided by the
// mutex's backend; the ordering rules are the same either way. A backend
// failure (including ctx cancellation on suspending backends) is returned as
// an error with no lock held.
func WithLock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *Mutex[N, T]) (*LockedAt[N], *MutexGuard[N, T], error) {
	child, s, err := acquire[L, N](ctx, lt, m.mu.Lock)
	if err != nil {
		return nil, nil, err
	}
	return child, &MutexGuard[N, T]{m: m, s: s}, nil
}

// Lock is WithLock for leaf acquisitions where no further locks will be taken
// while the guard is held.
func Lock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *Mutex[N, T]) (*MutexGuard[N, T], error) {
	_, g, err := WithLock(ctx, lt, m)
	return g, err
}

// ReadGuard owns shared access to the value of an RWMutex until released.
// The value must be treated as read-only.
type ReadGuard[N, T any] struct {
	m *RWMutex[N, T]
	s *guardState
}

func (g *ReadGuard[N, T]) Value() *T {
	g.s.value()
	return &g.m.value
}

func (g *ReadGuard[N, T]) Release(ctx context.Context) error {
	g.s.release()
	return g.m.mu.RUnlock(ctx)
}

// WriteGuard owns exclusive access to the value of an RWMutex until released.
type WriteGuard[N, T any] struct {
	m *RWMutex[N, T]
	s *guardState
}

func (g *WriteGuard[N, T]) Value() *T {
	g.s.value()
	return &g.m.value
}

func (g *WriteGuard[N, T]) Release(ctx context.Context) error {
	g.s.release()
	return g.m.mu.Unlock(ctx)
}

// WithReadLock acquires shared access at level N. See WithLock.
func WithReadLock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *RWMutex[N, T]) (*LockedAt[N], *ReadGuard[N, T], error) {
	child, s, err := acquire[L, N](ctx, lt, m.mu.RLock)
	if err != nil {
		return nil, nil, err
	}
	return child, &ReadGuard[N, T]{m: m, s: s}, nil
}

// ReadLock is WithReadLock for leaf acquisitions.
func ReadLock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *RWMutex[N, T]) (*ReadGuard[N, T], error) {
	_, g, err := WithReadLock(ctx, lt, m)
	return g, err
}

// WithWriteLock acquires exclusive access at level N. See WithLock.
func WithWriteLock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *RWMutex[N, T]) (*LockedAt[N], *WriteGuard[N, T], error) {
	child, s, err := acquire[L, N](ctx, lt, m.mu.Lock)
	if err != nil {
		return nil, nil, err
	}
	return child, &WriteGuard[N, T]{m: m, s: s}, nil
}

// WriteLock is WithWriteLock for leaf acquisitions.
func WriteLock[L, N, T any](ctx context.Context, lt *LockedAt[L], m *RWMutex[N, T]) (*WriteGuard[N, T], error) {
	_, g, err := WithWriteLock(ctx, lt, m)
	return g, err
}
