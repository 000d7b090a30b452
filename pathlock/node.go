// Package pathlock implements a path-lock concurrent link-cut forest: an
// access walk that acquires and holds the latch of every preferred-path
// representative it passes through, releasing the whole trace in reverse
// order only once the structural mutation is complete.
//
// This is a direct arena-index translation of
// original_source/include/ConcurrentLCT.hpp's ConcurrentLinkCutTrees, the
// teacher's own index-arena discipline (G-M-twostay-Go-Utils/Trees/base.go)
// taking the place of the original's raw CoNode* pointers, and
// latch.Latch/piarray.Array taking the place of std::mutex and the inline
// pi_ vector.
package pathlock

import (
	"github.com/arborist-systems/linkcut/latch"
)

const null int32 = -1

// Node is one unit of the forest's auxiliary-tree arena. Left is nearer the
// forest root along the current preferred path, Right is nearer the leaves
// — the same fixed orientation as package forest.
type Node struct {
	Left, Right, Parent int32
}

func newNode() Node {
	return Node{Left: null, Right: null, Parent: null}
}

// isSplayRoot reports whether x is the root of its auxiliary tree.
func (t *Tree) isSplayRoot(x int32) bool {
	p := t.nodes[x].Parent
	if p == null {
		return true
	}
	return t.nodes[p].Left != x && t.nodes[p].Right != x
}

// latchFor returns the per-representative latch at label r.
func (t *Tree) latchFor(r uint32) *latch.Latch {
	return &t.latches[r]
}
