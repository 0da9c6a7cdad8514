package sync_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	syncback "github.com/ezraisw/lockorder/backend/sync"
)

func TestMutexExcludes(t *testing.T) {
	ctx := context.Background()
	mu := syncback.NewMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, mu.Lock(ctx))
				counter++
				assert.NoError(t, mu.Unlock(ctx))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, counter)
}

func TestRWMutexAllowsConcurrentReaders(t *testing.T) {
	ctx := context.Background()
	mu := syncback.NewRWMutex()

	assert.NoError(t, mu.RLock(ctx))
	assert.NoError(t, mu.RLock(ctx))
	assert.NoError(t, mu.RUnlock(ctx))
	assert.NoError(t, mu.RUnlock(ctx))

	assert.NoError(t, mu.Lock(ctx))
	assert.NoError(t, mu.Unlock(ctx))
}
