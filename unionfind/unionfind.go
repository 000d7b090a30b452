// Package unionfind implements a disjoint-set oracle: a dense-index
// union-find used purely as a correctness cross-check against the link-cut
// forest backends (workload's self-check replay, driver's tests),
// never in any hot path.
//
// The dense-array entry layout (representative/rank per label, no maps) is
// grounded on original_source/include/UnionFind.hpp; the path-compression
// and union-by-rank logic is grounded on the teacher-pack's own
// other_examples/Ekats-Mycelica__unionfind.go, reworked from a map-of-string
// keys to a dense uint32 label space and from recursive to iterative Find
// so a long random chain cannot blow the goroutine stack.
package unionfind

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// entry mirrors UnionFind.hpp's Entry: a representative label and a rank,
// both meaningful only at a root.
type entry struct {
	parent uint32
	rank   uint32
}

// Oracle is a union-find over the dense label space [0, n).
type Oracle struct {
	entries []entry
}

// New builds an oracle of n singleton sets.
func New(n int) *Oracle {
	entries := make([]entry, n)
	for i := range entries {
		entries[i].parent = uint32(i)
	}
	return &Oracle{entries: entries}
}

// Find returns the representative of the set containing x, compressing
// every node visited along the way to point directly at the root. The walk
// up is iterative via an explicit stack (gods/stacks/arraystack) rather
// than recursive, so a long random chain cannot blow the goroutine stack.
func (o *Oracle) Find(x uint32) uint32 {
	visited := arraystack.New()
	cur := x
	for o.entries[cur].parent != cur {
		visited.Push(cur)
		cur = o.entries[cur].parent
	}
	root := cur

	for !visited.Empty() {
		v, _ := visited.Pop()
		o.entries[v.(uint32)].parent = root
	}
	return root
}

// Union merges the sets containing a and b by rank. Returns false if a and
// b were already in the same set.
func (o *Oracle) Union(a, b uint32) bool {
	rootA := o.Find(a)
	rootB := o.Find(b)
	if rootA == rootB {
		return false
	}

	rankA := o.entries[rootA].rank
	rankB := o.entries[rootB].rank
	switch {
	case rankA < rankB:
		o.entries[rootA].parent = rootB
	case rankA > rankB:
		o.entries[rootB].parent = rootA
	default:
		o.entries[rootB].parent = rootA
		o.entries[rootA].rank++
	}
	return true
}

// Connected reports whether a and b lie in the same set.
func (o *Oracle) Connected(a, b uint32) bool {
	return o.Find(a) == o.Find(b)
}

// Len returns the number of labels this oracle covers.
func (o *Oracle) Len() int {
	return len(o.entries)
}
