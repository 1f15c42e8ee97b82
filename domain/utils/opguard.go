package utils

import (
	"sync/atomic"

	"lotto/domain/entities"
)

// OpGuard is a non-reentrant guard for one logical resource. A handler holds
// it for the duration of a state-mutating operation so that a nested call
// triggered by an external effect cannot observe half-updated state. Release
// must run on every exit path; callers pair Acquire with defer Release.
type OpGuard struct {
	busy atomic.Bool
}

// Acquire takes the guard, failing immediately if it is already held
func (g *OpGuard) Acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return entities.ErrOperationInFlight
	}
	return nil
}

// Release frees the guard
func (g *OpGuard) Release() {
	g.busy.Store(false)
}
