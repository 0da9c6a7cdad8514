package lockorder

import "reflect"

// Unlocked is the least-restrictive lock level, held by a context on which no
// locks have been acquired yet. Every other lock level must be reachable from
// Unlocked through at least one declared relation edge.
type Unlocked struct{}

// A lock level is any type used purely as a type argument to identify a class
// of protected resources. Level types are never constructed; their runtime
// identity, used by the relation registry and in diagnostics, is their
// reflect.Type.
func levelOf[L any]() reflect.Type {
	return reflect.TypeOf((*L)(nil)).Elem()
}
