package forest

import "github.com/arborist-systems/linkcut/lct"

// Tree is a sequential link-cut forest: n nodes, each identified by its
// dense label in [0, n), with no auxiliary state beyond the node arena
// itself.
type Tree struct {
	nodes []Node
}

// New builds a forest of n singleton trees, one per label in [0, n).
func New(n int) *Tree {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = newNode()
	}
	return &Tree{nodes: nodes}
}

var _ lct.Tree = (*Tree)(nil)

// expose splices every preferred path from x up to the forest root into a
// single auxiliary tree ending at x, and returns x.
func (t *Tree) expose(x int32) int32 {
	var last int32 = null
	for y := x; y != null; y = t.nodes[y].Parent {
		t.splay(y)
		t.nodes[y].Right = last
		last = y
	}
	t.splay(x)
	return x
}

// Link makes y the parent of x. Panics if x is not currently a forest
// root, or if x and y are the same node.
func (t *Tree) Link(x, y uint32) {
	xi := int32(x)
	t.expose(xi)
	if t.nodes[xi].Left != null {
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "x is not a forest root"})
	}
	if x == y {
		panic(lct.PreconditionViolation{Op: "Link", Node: x, Msg: "self-loop: x and y must differ"})
	}
	t.nodes[xi].Parent = int32(y)
}

// Cut detaches x from its parent. Panics if x is already a forest root.
func (t *Tree) Cut(x uint32) {
	xi := int32(x)
	t.expose(xi)
	if t.nodes[xi].Left == null {
		panic(lct.PreconditionViolation{Op: "Cut", Node: x, Msg: "x is already a forest root"})
	}
	t.nodes[t.nodes[xi].Left].Parent = null
	t.nodes[xi].Left = null
}

// FindRoot returns the root of the tree containing x.
func (t *Tree) FindRoot(x uint32) uint32 {
	xi := t.expose(int32(x))
	for t.nodes[xi].Left != null {
		xi = t.nodes[xi].Left
	}
	t.splay(xi)
	return uint32(xi)
}

// AreConnected reports whether x and y lie in the same tree.
func (t *Tree) AreConnected(x, y uint32) bool {
	return t.FindRoot(x) == t.FindRoot(y)
}

// LCA returns the lowest common ancestor of x and y in the tree containing
// both. Exposes x, then during exposing y records the last node whose
// path-parent edge changed — that node is the LCA.
func (t *Tree) LCA(x, y uint32) uint32 {
	t.expose(int32(x))
	return uint32(t.exposeTrackingLCA(int32(y)))
}

// exposeTrackingLCA is expose(y), but it returns the visited ancestor whose
// Parent is null once splayed — the last one visited, lying in the forest
// root's auxiliary tree, i.e. the node at which y's path merges into x's,
// which is exactly the LCA.
func (t *Tree) exposeTrackingLCA(y int32) int32 {
	var last, lca int32 = null, null
	for cur := y; cur != null; cur = t.nodes[cur].Parent {
		t.splay(cur)
		if t.nodes[cur].Parent == null {
			lca = cur
		}
		t.nodes[cur].Right = last
		last = cur
	}
	t.splay(y)
	return lca
}
