// Package forest implements a sequential link-cut tree: splay-tree-per-
// preferred-path forest maintenance under Link, Cut, FindRoot, LCA and
// AreConnected, all amortized O(log n).
//
// Nodes live in a dense arena indexed by label, avoiding a cyclic pointer
// graph. This mirrors the teacher's own index arena
// (G-M-twostay-Go-Utils/Trees/base.go), except labels here are already
// dense zero-based indices, so -1 (not 0) is the null sentinel and no
// 1-based offset is needed.
package forest

// null is the sentinel for "no node" in the index arena.
const null int32 = -1

// Node is one unit of the forest. Left is nearer the forest root along the
// node's current preferred path, Right is nearer the leaves — fixed and
// mirrored consistently across every backend in this module.
type Node struct {
	Left, Right, Parent int32
}

func newNode() Node {
	return Node{Left: null, Right: null, Parent: null}
}

// isSplayRoot reports whether n is the root of its auxiliary tree, i.e.
// whether its Parent link (if any) is a path-parent rather than a splay
// edge. Parent is overloaded between "splay parent" and "path parent" and
// disambiguated purely by whether the parent's child slot points back at n.
func (t *Tree) isSplayRoot(x int32) bool {
	p := t.nodes[x].Parent
	if p == null {
		return true
	}
	return t.nodes[p].Left != x && t.nodes[p].Right != x
}
