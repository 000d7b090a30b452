// Package lockcoupling implements a lock-coupling concurrent link-cut
// forest: an access walk that holds at most two representative latches at
// once, releasing the previous one the instant the next hop is spliced and
// π-linked in.
//
// This is a direct arena-index translation of
// original_source/include/LockCouplingLCT.hpp's LockCouplingLinkCutTrees,
// using the same index-arena and latch.Latch/piarray.Array substitutions as
// package pathlock.
package lockcoupling

import "github.com/arborist-systems/linkcut/latch"

const null int32 = -1

// Node is one unit of the forest's auxiliary-tree arena, same orientation
// convention as forest.Node and pathlock.Node.
type Node struct {
	Left, Right, Parent int32
}

func newNode() Node {
	return Node{Left: null, Right: null, Parent: null}
}

func (t *Tree) isSplayRoot(x int32) bool {
	p := t.nodes[x].Parent
	if p == null {
		return true
	}
	return t.nodes[p].Left != x && t.nodes[p].Right != x
}

func (t *Tree) latchFor(r uint32) *latch.Latch {
	return &t.latches[r]
}
