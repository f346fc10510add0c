// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

import (
	"sync/atomic"
)

// Guard enforces the shared/exclusive aliasing discipline at run time:
// any number of shared accessors of a record may coexist; an exclusive
// accessor excludes all others for its lifetime. Violations are
// programmer errors and fail fast with a panic (Share/Exclusive) or
// report false (TryShare/TryExclusive).
//
// The guard is opt-in and opaque to dispatch: embed one next to a record
// that clients hand across goroutines, and bracket access explicitly.
// It never blocks — it is a discipline check, not a lock.
type Guard struct {
	// state counts outstanding shared accessors, or is -1 while an
	// exclusive accessor is held.
	state atomic.Int64
}

// Share acquires shared access.
// Panics if an exclusive accessor is outstanding.
func (g *Guard) Share() {
	if !g.TryShare() {
		panic("heir: shared access while an exclusive accessor is outstanding")
	}
}

// TryShare attempts to acquire shared access.
// Returns false if an exclusive accessor is outstanding.
func (g *Guard) TryShare() bool {
	for {
		s := g.state.Load()
		if s < 0 {
			return false
		}
		if g.state.CompareAndSwap(s, s+1) {
			return true
		}
	}
}

// Release returns a shared acquisition.
// Panics if no shared accessor is outstanding.
func (g *Guard) Release() {
	if g.state.Add(-1) < 0 {
		panic("heir: release of shared access that was never acquired")
	}
}

// Exclusive acquires exclusive access.
// Panics if any accessor, shared or exclusive, is outstanding.
func (g *Guard) Exclusive() {
	if !g.TryExclusive() {
		panic("heir: exclusive access while other accessors are outstanding")
	}
}

// TryExclusive attempts to acquire exclusive access.
// Returns false if any accessor is outstanding.
func (g *Guard) TryExclusive() bool {
	return g.state.CompareAndSwap(0, -1)
}

// ReleaseExclusive returns an exclusive acquisition.
// Panics if exclusive access is not held.
func (g *Guard) ReleaseExclusive() {
	if !g.state.CompareAndSwap(-1, 0) {
		panic("heir: release of exclusive access that was never acquired")
	}
}
