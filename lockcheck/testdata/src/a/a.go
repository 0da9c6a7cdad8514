package a // want package:"declares 5 lock-order edges"

import (
	"context"

	"github.com/ezraisw/lockorder"
)

type (
	Database struct{}
	Cache    struct{}
	Journal  struct{}
)

var (
	_ = lockorder.Declare[lockorder.Unlocked, Database]()
	_ = lockorder.Declare[lockorder.Unlocked, Cache]()
	_ = lockorder.Declare[Database, Cache]()
	_ = lockorder.Declare[Cache, Journal]()
	_ = lockorder.DeclareTransitive[Database, Cache, Journal]()
)

var (
	db      = lockorder.NewMutex[Database](0)
	cache   = lockorder.NewMutex[Cache]("")
	journal = lockorder.NewRWMutex[Journal]([]string(nil))
)

func inOrder(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, dbGuard, err := lockorder.WithLock(ctx, lt, db)
	if err != nil {
		return err
	}
	defer dbGuard.Release(ctx)

	cacheGuard, err := lockorder.Lock(ctx, lt2, cache)
	if err != nil {
		return err
	}
	defer cacheGuard.Release(ctx)

	*dbGuard.Value()++
	return nil
}

func skipLevel(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, dbGuard, err := lockorder.WithLock(ctx, lt, db)
	if err != nil {
		return err
	}
	defer dbGuard.Release(ctx)

	// Admitted by the explicit transitive edge Database -> Journal.
	jGuard, err := lockorder.WriteLock(ctx, lt2, journal)
	if err != nil {
		return err
	}
	return jGuard.Release(ctx)
}

func outOfOrder(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, cacheGuard, err := lockorder.WithLock(ctx, lt, cache)
	if err != nil {
		return err
	}
	defer cacheGuard.Release(ctx)

	dbGuard, err := lockorder.Lock(ctx, lt2, db) // want `cannot acquire a.Database while a.Cache is held: relation "a.Cache before a.Database" is not declared`
	if err != nil {
		return err
	}
	return dbGuard.Release(ctx)
}

func reflexive(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	lt2, dbGuard, err := lockorder.WithLock(ctx, lt, db)
	if err != nil {
		return err
	}
	defer dbGuard.Release(ctx)

	again, err := lockorder.Lock(ctx, lt2, db) // want `cannot acquire a.Database while a.Database is already held: a lock level never precedes itself`
	if err != nil {
		return err
	}
	return again.Release(ctx)
}

func undeclaredRead(ctx context.Context) error {
	lt := lockorder.NewUnlocked()

	// Unlocked -> Journal was never declared; only the skip edge from
	// Database exists.
	jGuard, err := lockorder.ReadLock(ctx, lt, journal) // want `cannot acquire a.Journal while github.com/ezraisw/lockorder.Unlocked is held: relation "github.com/ezraisw/lockorder.Unlocked before a.Journal" is not declared`
	if err != nil {
		return err
	}
	return jGuard.Release(ctx)
}
