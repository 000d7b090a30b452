package pathlock

import (
	"github.com/arborist-systems/linkcut/lct"
	"github.com/arborist-systems/linkcut/latch"
	"github.com/arborist-systems/linkcut/piarray"
)

// Tree is a path-lock concurrent link-cut forest: n nodes on a dense label
// space, one latch per node, and a shared π-array indexing preferred-path
// representatives.
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

// pathExpose is the locking access walk: it climbs from x to the forest
// root one preferred path at a time, locking each path's current
// representative via the lock-then-recheck protocol before splaying, and
// returns the full trace of representatives locked, outermost first, so the
// caller can release them in reverse order once its mutation is done.
//
// This holds every latch on the path for the duration of the operation —
// the defining trade-off of the path-lock strategy versus lockcoupling's
// two-latch window.
func (t *Tree) pathExpose(x int32) []uint32 {
	var trace []uint32
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
			t.pi.Link(trace[len(trace)-1], uint32(y))
		}

		trace = append(trace, repr)
		last = y
	}

	t.splay(x)
	return trace
}

// unlockTrace releases every latch in trace in reverse acquisition order.
func (t *Tree) unlockTrace(trace []uint32) {
	for i := len(trace) - 1; i >= 0; i-- {
		t.latchFor(trace[i]).Unlock()
	}
}

// Link makes y the parent of x. Panics if x is not currently a forest root.
func (t *Tree) Link(x, y uint32) {
	xi := int32(x)
	trace := t.pathExpose(xi)

	if t.nodes[xi].Left != null {
		t.unlockTrace(trace)
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "x is not a forest root"})
	}
	if x == y {
		t.unlockTrace(trace)
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "self-loop: x and y must differ"})
	}
	t.nodes[xi].Parent = int32(y)

	t.unlockTrace(trace)
}

// Cut detaches x from its parent. Panics if x is already a forest root.
func (t *Tree) Cut(x uint32) {
	xi := int32(x)
	trace := t.pathExpose(xi)

	if t.nodes[xi].Left == null {
		t.unlockTrace(trace)
		panic(lct.PreconditionViolation{Op: "Cut", Node: x, Msg: "x is already a forest root"})
	}
	t.nodes[t.nodes[xi].Left].Parent = null
	t.nodes[xi].Left = null
	t.pi.Unlink(x)

	t.unlockTrace(trace)
}

// FindRoot returns the root of the tree containing x.
func (t *Tree) FindRoot(x uint32) uint32 {
	xi := int32(x)
	trace := t.pathExpose(xi)

	for t.nodes[xi].Left != null {
		xi = t.nodes[xi].Left
	}
	t.splay(xi)

	t.unlockTrace(trace)
	return uint32(xi)
}

// AreConnected reports whether x and y lie in the same tree.
func (t *Tree) AreConnected(x, y uint32) bool {
	return t.FindRoot(x) == t.FindRoot(y)
}
