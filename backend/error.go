package backend

import "errors"

var (
	ErrFailedLock   = errors.New("lockorder: failed lock")
	ErrFailedUnlock = errors.New("lockorder: failed unlock")
)
