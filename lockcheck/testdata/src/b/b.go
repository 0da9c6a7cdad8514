package b

import (
	"context"

	"decls"

	"github.com/ezraisw/lockorder"
)

func audited(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, accounts, err := lockorder.WithLock(ctx, lt, decls.AccountsMu)
	if err != nil {
		return err
	}
	defer accounts.Release(ctx)

	audit, err := lockorder.Lock(ctx, lt2, decls.AuditMu)
	if err != nil {
		return err
	}
	return audit.Release(ctx)
}

func backwards(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, audit, err := lockorder.WithLock(ctx, lt, decls.AuditMu) // want `cannot acquire decls.Audit while github.com/ezraisw/lockorder.Unlocked is held: relation "github.com/ezraisw/lockorder.Unlocked before decls.Audit" is not declared`
	if err != nil {
		return err
	}
	defer audit.Release(ctx)

	accounts, err := lockorder.Lock(ctx, lt2, decls.AccountsMu) // want `cannot acquire decls.Accounts while decls.Audit is held: relation "decls.Audit before decls.Accounts" is not declared`
	if err != nil {
		return err
	}
	return accounts.Release(ctx)
}
