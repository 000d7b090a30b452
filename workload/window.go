package workload

import "github.com/google/btree"

// touchedNode is one entry in a barrier window: the node label and the
// generator edge index at which it was last touched.
type touchedNode struct {
	order uint32
	node  uint32
}

func touchedNodeLess(a, b touchedNode) bool {
	if a.order != b.order {
		return a.order < b.order
	}
	return a.node < b.node
}

// touchWindow is the generator's "recently touched" set for one barrier
// window: ordered by each node's latest touch position so the earliest-touched
// beta nodes can be read off without re-sorting the whole window on every
// flush, the way
// original_source/build_concurrent_workload.cc's std::sort(workingSet...)
// does per batch. Backed by a btree.BTreeG so each touch is an incremental
// O(log n) insert instead of an O(n log n) sort at flush time.
type touchWindow struct {
	tree   *btree.BTreeG[touchedNode]
	byNode map[uint32]touchedNode
}

func newTouchWindow() *touchWindow {
	return &touchWindow{
		tree:   btree.NewG(32, touchedNodeLess),
		byNode: make(map[uint32]touchedNode),
	}
}

// touch records that node was touched at position order (the index of the
// touching edge in the generator's edge list), replacing any earlier touch
// of the same node.
func (w *touchWindow) touch(node, order uint32) {
	if old, ok := w.byNode[node]; ok {
		w.tree.Delete(old)
	}
	nt := touchedNode{order: order, node: node}
	w.tree.ReplaceOrInsert(nt)
	w.byNode[node] = nt
}

// take returns up to limit distinct nodes in touch order, earliest first,
// and resets the window for the next barrier.
func (w *touchWindow) take(limit int) []uint32 {
	nodes := make([]uint32, 0, limit)
	w.tree.Ascend(func(t touchedNode) bool {
		if len(nodes) >= limit {
			return false
		}
		nodes = append(nodes, t.node)
		return true
	})
	w.tree = btree.NewG(32, touchedNodeLess)
	w.byNode = make(map[uint32]touchedNode)
	return nodes
}
