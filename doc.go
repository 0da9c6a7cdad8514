// Package lockorder enforces a declared lock-acquisition order, ruling out
// the circular waits behind lock-order deadlocks.
//
// Marker types represent lock levels; Declare composes a directed, acyclic
// relation over them during package init. A LockedAt context tracks the
// innermost level held on the current goroutine or task, and every
// acquisition is admitted only along a declared edge. Because all goroutines
// acquire against the same frozen relation, any two acquisition sequences are
// consistent in relative order.
//
// Out-of-order acquisitions panic with a *Violation naming the held level,
// the requested level, and the missing relation direction; to reject them
// before the program runs, the lockcheck analyzer (cmd/lockcheck) performs
// the same check statically.
//
// Which primitive implements the mutual exclusion is pluggable per mutex: see
// the backend subpackages for host locks, suspending semaphores, file locks,
// and Redis-based distributed locks.
package lockorder
