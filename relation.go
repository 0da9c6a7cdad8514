package lockorder

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/ezraisw/lockorder/logger"
)

type (
	// Relation is the value produced by declarations. It carries no state and
	// exists so that declarations can double as package-level variable
	// initializers:
	//
	//	var _ = lockorder.Declare[lockorder.Unlocked, Database]()
	Relation struct{}

	// edgeSet maps a level to the set of levels that may be acquired while it
	// is held.
	edgeSet map[reflect.Type]map[reflect.Type]bool

	registry struct {
		mu     sync.Mutex
		edges  edgeSet
		log    logger.Logger
		frozen atomic.Pointer[edgeSet]
	}
)

var global = newRegistry()

func newRegistry() *registry {
	return &registry{edges: edgeSet{}, log: logger.NewNop()}
}

// Declare asserts one directed edge of the order relation: a lock at level
// Before may be held while a lock at level After is acquired.
//
// Declarations compose the program-wide relation and belong in package init
// (or package-level variable initializers). The relation freezes on the first
// acquisition anywhere in the process; declaring afterwards panics. Each
// direction of each pair must be declared on its own, and no transitive edges
// are inferred - see DeclareTransitive. Declaring an edge twice is a no-op.
//
// Declare panics if Before and After are the same level, or if the new edge
// would close a cycle among the declared edges.
func Declare[Before, After any]() Relation {
	return global.declare(levelOf[Before](), levelOf[After]())
}

// DeclareTransitive asserts the edge "A before C" as an explicit shortcut
// across the already-declared edges "A before B" and "B before C". It panics
// if either underlying edge is missing, keeping skip-level acquisitions an
// intentional, reviewable act rather than an accident of reachability.
func DeclareTransitive[A, B, C any]() Relation {
	return global.declareTransitive(levelOf[A](), levelOf[B](), levelOf[C]())
}

// SetLogger routes declaration and violation reporting through the given
// logger. It must be called before the relation freezes.
func SetLogger(l logger.Logger) {
	global.setLogger(l)
}

func (r *registry) declare(before, after reflect.Type) Relation {
	if before == after {
		panic(fmt.Sprintf("lockorder: reflexive declaration %q", edgeString(before, after)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() != nil {
		panic(fmt.Sprintf("lockorder: declaration %q after the order relation was frozen", edgeString(before, after)))
	}
	if r.edges[before][after] {
		return Relation{}
	}
	if r.reachable(after, before) {
		panic(fmt.Sprintf("lockorder: declaration %q closes an ordering cycle", edgeString(before, after)))
	}

	if r.edges[before] == nil {
		r.edges[before] = map[reflect.Type]bool{}
	}
	r.edges[before][after] = true

	r.log.Debug("declared", edgeString(before, after))
	return Relation{}
}

func (r *registry) declareTransitive(a, b, c reflect.Type) Relation {
	r.mu.Lock()
	if !r.edges[a][b] || !r.edges[b][c] {
		r.mu.Unlock()
		panic(fmt.Sprintf("lockorder: transitive declaration %q requires declared edges %q and %q",
			edgeString(a, c), edgeString(a, b), edgeString(b, c)))
	}
	r.mu.Unlock()

	return r.declare(a, c)
}

// reachable reports whether `to` can be reached from `from` by following
// declared edges. Callers must hold r.mu.
func (r *registry) reachable(from, to reflect.Type) bool {
	if from == to {
		return true
	}

	visited := map[reflect.Type]bool{}
	stack := []reflect.Type{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range r.edges[cur] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// freeze snapshots the declared edges the first time it is called. All later
// reads go through the snapshot without locking.
func (r *registry) freeze() edgeSet {
	if s := r.frozen.Load(); s != nil {
		return *s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s := r.frozen.Load(); s != nil {
		return *s
	}

	snapshot := make(edgeSet, len(r.edges))
	for before, afters := range r.edges {
		cp := make(map[reflect.Type]bool, len(afters))
		for after := range afters {
			cp[after] = true
		}
		snapshot[before] = cp
	}
	r.frozen.Store(&snapshot)
	return snapshot
}

func (r *registry) allows(before, after reflect.Type) bool {
	return r.freeze()[before][after]
}

func (r *registry) setLogger(l logger.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() != nil {
		panic("lockorder: SetLogger after the order relation was frozen")
	}
	r.log = l
}

func (r *registry) reportViolation(v *Violation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log.Error(v)
}
