package lockcoupling

import (
	"github.com/arborist-systems/linkcut/lct"
	"github.com/arborist-systems/linkcut/latch"
	"github.com/arborist-systems/linkcut/piarray"
)

// Tree is a lock-coupling concurrent link-cut forest: an access walk holds
// at most two representative latches at once, in exchange for giving up
// path-lock's whole-trace hold.
type Tree struct {
	nodes   []Node
	latches []latch.Latch
	pi      *piarray.Array
}

// New builds a forest of n singleton trees.
func New(n int) *Tree {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = newNode()
	}
	return &Tree{
		nodes:   nodes,
		latches: make([]latch.Latch, n),
		pi:      piarray.New(n),
	}
}

var _ lct.Tree = (*Tree)(nil)

// pathExpose is the lock-coupling access walk: the representative latch
// locked for the previous hop is released the moment the current hop's
// preferred-path edge is spliced and π-linked to it, so at most two
// latches are ever held at once. Only the last-acquired representative
// latch is still held when pathExpose returns; the caller releases it via
// unlockTrace once its mutation is complete.
func (t *Tree) pathExpose(x int32) (trace uint32, held bool) {
	last := int32(null)

	for y := x; y != null; y = t.nodes[y].Parent {
		repr := t.pi.Repr(uint32(y))
		for {
			t.latchFor(repr).Lock()
			newRepr := t.pi.Repr(uint32(y))
			if repr == newRepr {
				break
			}
			t.latchFor(repr).Unlock()
			repr = newRepr
		}

		t.splay(y)

		if t.nodes[y].Right != null {
			tmp := t.nodes[y].Right
			for t.nodes[tmp].Left != null {
				tmp = t.nodes[tmp].Left
			}
			reprOfPath := uint32(tmp)
			t.nodes[y].Right = null
			t.pi.Unlink(reprOfPath)
		}

		t.nodes[y].Right = last
		if last != null {
			t.pi.Link(trace, uint32(y))
			t.latchFor(trace).Unlock()
		}

		trace, held = repr, true
		last = y
	}

	t.splay(x)
	return trace, held
}

// unlockTrace releases the single latch, if any, still held by a pathExpose
// call.
func (t *Tree) unlockTrace(trace uint32, held bool) {
	if held {
		t.latchFor(trace).Unlock()
	}
}

// Link makes y the parent of x. Panics if x is not currently a forest root.
func (t *Tree) Link(x, y uint32) {
	xi := int32(x)
	trace, held := t.pathExpose(xi)

	if t.nodes[xi].Left != null {
		t.unlockTrace(trace, held)
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "x is not a forest root"})
	}
	if x == y {
		t.unlockTrace(trace, held)
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "self-loop: x and y must differ"})
	}
	t.nodes[xi].Parent = int32(y)

	t.unlockTrace(trace, held)
}

// Cut detaches x from its parent. Panics if x is already a forest root.
func (t *Tree) Cut(x uint32) {
	xi := int32(x)
	trace, held := t.pathExpose(xi)

	if t.nodes[xi].Left == null {
		t.unlockTrace(trace, held)
		panic(lct.PreconditionViolation{Op: "Cut", Node: x, Msg: "x is already a forest root"})
	}
	t.nodes[t.nodes[xi].Left].Parent = null
	t.nodes[xi].Left = null
	t.pi.Unlink(x)

	t.unlockTrace(trace, held)
}

// FindRoot returns the root of the tree containing x.
func (t *Tree) FindRoot(x uint32) uint32 {
	xi := int32(x)
	trace, held := t.pathExpose(xi)

	for t.nodes[xi].Left != null {
		xi = t.nodes[xi].Left
	}
	t.splay(xi)

	t.unlockTrace(trace, held)
	return uint32(xi)
}

// AreConnected reports whether x and y lie in the same tree.
func (t *Tree) AreConnected(x, y uint32) bool {
	return t.FindRoot(x) == t.FindRoot(y)
}
