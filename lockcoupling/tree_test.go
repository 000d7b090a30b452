package lockcoupling

import (
	"sync"
	"testing"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/stretchr/testify/require"
)

func TestPathOfFour(t *testing.T) {
	tr := New(4)
	tr.Link(1, 0)
	tr.Link(2, 1)
	tr.Link(3, 2)

	require.EqualValues(t, 0, tr.FindRoot(3))
	require.True(t, tr.AreConnected(0, 3))

	tr.Cut(2)
	require.False(t, tr.AreConnected(0, 3))
	require.EqualValues(t, 2, tr.FindRoot(3))
}

func TestLinkRejectsNonRoot(t *testing.T) {
	tr := New(3)
	tr.Link(1, 0)
	require.Panics(t, func() {
		tr.Link(1, 2)
	})
}

func TestCutRejectsRoot(t *testing.T) {
	tr := New(2)
	require.Panics(t, func() {
		tr.Cut(0)
	})
}

func TestSelfLoopPanics(t *testing.T) {
	tr := New(2)
	require.Panics(t, func() {
		tr.Link(1, 1)
	})
}

// TestConcurrentLinksOnDisjointPathsConverge mirrors pathlock's equivalent
// test against the lock-coupling backend.
func TestConcurrentLinksOnDisjointPathsConverge(t *testing.T) {
	const groups = 64
	const groupSize = 8
	n := groups*groupSize + 1
	tr := New(n)
	hub := uint32(n - 1)

	ops := haxmap.New[uint32, uint32]()

	var wg sync.WaitGroup
	wg.Add(groups)
	for g := 0; g < groups; g++ {
		go func(g int) {
			defer wg.Done()
			base := uint32(g * groupSize)
			for i := 0; i < groupSize; i++ {
				child := base + uint32(i)
				var parent uint32
				if i == 0 {
					parent = hub
				} else {
					parent = base + uint32(i-1)
				}
				tr.Link(child, parent)
				ops.Set(child, parent)
			}
		}(g)
	}
	wg.Wait()

	for label := uint32(0); label < uint32(groups*groupSize); label++ {
		_, ok := ops.Get(label)
		require.True(t, ok)
		require.True(t, tr.AreConnected(label, hub))
		require.EqualValues(t, hub, tr.FindRoot(label))
	}
}

// TestFindRootBlocksOnHeldRepresentativeLatch deterministically reproduces
// lock-coupling contention: one goroutine holds the representative latch
// shared by a 64-node chain, a second goroutine's FindRoot on that same
// chain must spin on that exact latch rather than proceed, and once the
// first goroutine releases it the second completes with the correct root.
func TestFindRootBlocksOnHeldRepresentativeLatch(t *testing.T) {
	const n = 64
	tr := New(n)
	for i := 1; i < n; i++ {
		tr.Link(uint32(i), uint32(i-1))
	}

	require.EqualValues(t, 0, tr.FindRoot(n-1))
	repr := tr.pi.Repr(n - 1)
	require.Equal(t, repr, tr.pi.Repr(32))

	held := tr.latchFor(repr)
	require.True(t, held.TryLock())

	done := make(chan uint32, 1)
	go func() {
		done <- tr.FindRoot(32)
	}()

	select {
	case <-done:
		t.Fatal("FindRoot(32) returned while the representative latch was still held")
	case <-time.After(50 * time.Millisecond):
	}

	held.Unlock()

	select {
	case root := <-done:
		require.EqualValues(t, 0, root)
	case <-time.After(time.Second):
		t.Fatal("FindRoot(32) did not complete after the representative latch was released")
	}
}
