// Package atomics provides small word-sized atomic wrappers, the same shape
// as the teacher's AtomicUint/AtomicInt (G-M-twostay-Go-Utils/Atoms.go), but
// backed by the fixed-width atomic types instead of a uintptr so that the
// π-array and the per-node latch get a single natural-word atomic.
package atomics

import "sync/atomic"

// Uint32 is a single-word atomic counter/slot.
type Uint32 struct {
	v atomic.Uint32
}

func (u *Uint32) Load() uint32 {
	return u.v.Load()
}

func (u *Uint32) Store(val uint32) {
	u.v.Store(val)
}

func (u *Uint32) Add(delta uint32) uint32 {
	return u.v.Add(delta)
}

func (u *Uint32) Swap(val uint32) uint32 {
	return u.v.Swap(val)
}

func (u *Uint32) CompareAndSwap(old, new uint32) bool {
	return u.v.CompareAndSwap(old, new)
}
