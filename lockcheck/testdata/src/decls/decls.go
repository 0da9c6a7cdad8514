// Package decls holds the lock levels and order declarations consumed by
// package b.
package decls

import "github.com/ezraisw/lockorder"

type (
	Accounts struct{}
	Audit    struct{}
)

var (
	_ = lockorder.Declare[lockorder.Unlocked, Accounts]()
	_ = lockorder.Declare[Accounts, Audit]()
)

var (
	AccountsMu = lockorder.NewMutex[Accounts](map[string]int64{})
	AuditMu    = lockorder.NewMutex[Audit]([]string(nil))
)
