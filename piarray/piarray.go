// Package piarray implements the preferred-path representative index (the
// "π-array"): a process-wide, per-forest, intentionally unsynchronized
// array mapping each node to a label whose transitive following reaches
// the splay root of that node's current preferred path.
//
// Each slot is a single atomics.Uint32 — the teacher's own AtomicUint
// wrapper shape (G-M-twostay-Go-Utils/Atoms.go), chosen over bare
// sync/atomic calls scattered through the concurrent tree code so that
// single-word atomicity is visible at the type level rather than by
// convention.
package piarray

import "github.com/arborist-systems/linkcut/internal/atomics"

// Array is the π-array for a forest of n nodes, labels in [0, n).
type Array struct {
	slots []atomics.Uint32
}

// New builds a π-array with π[i] = i for i in [0, n): every node starts as
// the representative of its own singleton preferred path.
func New(n int) *Array {
	a := &Array{slots: make([]atomics.Uint32, n)}
	for i := range a.slots {
		a.slots[i].Store(uint32(i))
	}
	return a
}

// Link sets π[c] := p. Called only from the concurrent tree backends when
// a node's preferred path is absorbed into another.
func (a *Array) Link(c, p uint32) {
	a.slots[c].Store(p)
}

// Unlink sets π[c] := c, making c the representative of its own
// (now singleton-in-π) preferred path.
func (a *Array) Unlink(c uint32) {
	a.slots[c].Store(c)
}

// Repr follows π[x], π[π[x]], ... to a fixed point, or until the same value
// is observed twice in a row — a racing-update detector needed because a
// concurrent split/merge can otherwise make this chain briefly
// inconsistent. The returned value may be stale; callers must use a
// lock-then-recheck protocol before trusting it.
func (a *Array) Repr(x uint32) uint32 {
	for x != a.slots[x].Load() {
		prev := x
		x = a.slots[prev].Load()
		if x == prev {
			return x
		}
	}
	return x
}

// Len returns the number of nodes this π-array covers.
func (a *Array) Len() int {
	return len(a.slots)
}
