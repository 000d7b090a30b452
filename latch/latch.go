// Package latch implements the per-node mutual-exclusion primitive used by
// the concurrent link-cut tree backends (pathlock, lockcoupling) to guard a
// preferred path's auxiliary tree.
//
// A spinning mutex can outperform a fair blocking one under the short
// critical sections these backends use, at the cost of burning CPU under
// contention. This is patterned directly on the teacher's own spinlock,
// Maps/SpinMap/Node.go's Lock/Unlock: a CompareAndSwap loop over a single
// atomic word, backing off with runtime.Gosched() instead of blocking the
// OS thread.
package latch

import (
	"runtime"

	"github.com/arborist-systems/linkcut/internal/atomics"
)

const (
	free   uint32 = 0
	locked uint32 = 1
)

// Latch is a non-reentrant spinlock. The zero value is an unlocked latch.
type Latch struct {
	state atomics.Uint32
}

// Lock acquires the latch, spinning until it is free.
func (l *Latch) Lock() {
	for !l.state.CompareAndSwap(free, locked) {
		runtime.Gosched()
	}
}

// Unlock releases the latch. Unlock of an already-free latch is a
// programmer error and is not guarded against, mirroring sync.Mutex.
func (l *Latch) Unlock() {
	l.state.Store(free)
}

// TryLock attempts to acquire the latch without spinning. Lets tests
// observe contention deterministically — e.g. hold a latch on one
// goroutine and assert a second goroutine's TryLock fails — without
// relying on timing.
func (l *Latch) TryLock() bool {
	return l.state.CompareAndSwap(free, locked)
}
