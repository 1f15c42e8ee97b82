package utils

import (
	"sync"
	"testing"

	"lotto/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestOpGuard_AcquireRelease(t *testing.T) {
	t.Parallel()

	var guard OpGuard

	assert.NoError(t, guard.Acquire())

	// A nested acquisition must fail while the guard is held
	assert.ErrorIs(t, guard.Acquire(), entities.ErrOperationInFlight)

	guard.Release()
	assert.NoError(t, guard.Acquire())
	guard.Release()
}

func TestOpGuard_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	var guard OpGuard
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := guard.Acquire(); err == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly one goroutine wins; the guard is never released here
	assert.Equal(t, 1, acquired)
}
