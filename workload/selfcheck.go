package workload

import (
	"fmt"

	"github.com/arborist-systems/linkcut/forest"
	"github.com/arborist-systems/linkcut/unionfind"
)

// selfCheck replays trace against a fresh forest.Tree and a fresh
// unionfind.Oracle side by side, exactly as
// original_source/build_concurrent_workload.cc's checkForCorrectness does
// before writing a trace to disk: every LINK must leave its two nodes
// connected in both, every CUT must leave them disconnected in both, and
// every LOOKUP's expected root must match find_root.
//
// unionfind.Oracle only merges sets, so it cannot observe a CUT directly;
// this rebuilds a fresh oracle from the surviving edge set after each CUT
// to get a true decremental-connectivity cross-check rather than a stale
// one.
func selfCheck(n int, trace Trace) error {
	tr := forest.New(n)
	uf := unionfind.New(n)
	parentOf := make(map[uint32]uint32, n)

	rebuildOracle := func() *unionfind.Oracle {
		fresh := unionfind.New(n)
		for child, parent := range parentOf {
			fresh.Union(child, parent)
		}
		return fresh
	}

	for batchIdx, batch := range trace {
		switch batch.Kind {
		case OpLink:
			for i, op := range batch.Operands {
				x, y := op[0], op[1]
				tr.Link(x, y)
				uf.Union(x, y)
				parentOf[x] = y
				if !tr.AreConnected(x, y) {
					return fmt.Errorf("batch %d, link %d: link(%d, %d) did not connect the pair", batchIdx, i, x, y)
				}
				if uf.Connected(x, y) != tr.AreConnected(x, y) {
					return fmt.Errorf("batch %d, link %d: oracle and forest disagree on whether %d and %d are connected", batchIdx, i, x, y)
				}
			}
		case OpCut:
			for i, op := range batch.Operands {
				x, y := op[0], op[1]
				tr.Cut(x)
				delete(parentOf, x)
				uf = rebuildOracle()
				if tr.AreConnected(x, y) {
					return fmt.Errorf("batch %d, cut %d: cut(%d) left %d still connected to %d", batchIdx, i, x, x, y)
				}
				if uf.Connected(x, y) != tr.AreConnected(x, y) {
					return fmt.Errorf("batch %d, cut %d: oracle and forest disagree on whether %d and %d are connected", batchIdx, i, x, y)
				}
			}
		case OpLookup:
			for i, op := range batch.Operands {
				node, expected := op[0], op[1]
				if root := tr.FindRoot(node); root != expected {
					return fmt.Errorf("batch %d, lookup %d: find_root(%d) = %d, want %d", batchIdx, i, node, root, expected)
				}
			}
		default:
			return fmt.Errorf("batch %d: unknown op kind %v", batchIdx, batch.Kind)
		}
	}
	return nil
}
