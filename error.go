package lockorder

import (
	"fmt"
	"reflect"
)

// Violation reports a lock acquisition that the declared order relation does
// not admit. It is used as a panic value, never as a returned error: an
// out-of-order acquisition is a programming error in the caller, not a
// runtime condition, and must not be conflated with backend failures.
type Violation struct {
	// Held is the lock level of the context the acquisition was attempted on.
	Held reflect.Type

	// Requested is the lock level that was being acquired.
	Requested reflect.Type
}

func (v *Violation) Error() string {
	if v.Held == v.Requested {
		return fmt.Sprintf("lockorder: cannot acquire %s while %s is already held: a lock level never precedes itself", v.Requested, v.Held)
	}
	return fmt.Sprintf("lockorder: cannot acquire %s while %s is held: relation %q is not declared", v.Requested, v.Held, edgeString(v.Held, v.Requested))
}

func edgeString(before, after reflect.Type) string {
	return fmt.Sprintf("%s before %s", before, after)
}
