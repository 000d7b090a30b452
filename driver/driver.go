package driver

import (
	"fmt"

	"github.com/cornelk/hashmap"

	"github.com/arborist-systems/linkcut/lct"
	"github.com/arborist-systems/linkcut/workload"
)

// Driver executes a workload.Trace against one lct.Tree backend. The
// caller picks which concrete backend to construct (sequential, path-lock,
// or lock-coupling); Driver itself is backend-agnostic, dispatching only
// through the lct.Tree interface.
type Driver struct {
	Tree       lct.Tree
	NumThreads int
	TaskFactor int
	// Verify, when true, records every LOOKUP's observed root and reports
	// a mismatch against the trace's expected root instead of silently
	// discarding it.
	Verify bool
}

// New builds a Driver over tree with the given thread count and task
// factor.
func New(tree lct.Tree, numThreads, taskFactor int) *Driver {
	return &Driver{Tree: tree, NumThreads: numThreads, TaskFactor: taskFactor}
}

// MismatchError reports a LOOKUP whose observed root disagreed with the
// trace's recorded expected root.
type MismatchError struct {
	Node         uint32
	Want, Got    uint32
	BatchIndex   int
	OperandIndex int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("driver: batch %d, lookup %d: find_root(%d) = %d, want %d",
		e.BatchIndex, e.OperandIndex, e.Node, e.Got, e.Want)
}

// Run executes every batch of trace in order, joining the worker pool
// between batches: batches are a global barrier.
func (d *Driver) Run(trace workload.Trace) error {
	for batchIdx, batch := range trace {
		if err := d.runBatch(batchIdx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) runBatch(batchIdx int, batch workload.Batch) error {
	switch batch.Kind {
	case workload.OpLink:
		runTasks(len(batch.Operands), d.NumThreads, d.TaskFactor, func(start, stop int) {
			for i := start; i < stop; i++ {
				op := batch.Operands[i]
				d.Tree.Link(op[0], op[1])
			}
		})
		return nil

	case workload.OpCut:
		runTasks(len(batch.Operands), d.NumThreads, d.TaskFactor, func(start, stop int) {
			for i := start; i < stop; i++ {
				d.Tree.Cut(batch.Operands[i][0])
			}
		})
		return nil

	case workload.OpLookup:
		return d.runLookupBatch(batchIdx, batch)

	default:
		return fmt.Errorf("driver: batch %d: unknown op kind %v", batchIdx, batch.Kind)
	}
}

// runLookupBatch dispatches each LOOKUP to FindRoot. In Verify mode, every
// worker goroutine writes its (node, observedRoot) pair into a
// hashmap.Map[uint32, uint32] — the teacher-pack's own cornelk/hashmap,
// chosen here over a mutex-guarded slice so concurrent writers from
// different tasks never serialize on anything but the map's own internal
// synchronization — and the batch join drains it for comparison against
// the trace's expected roots.
func (d *Driver) runLookupBatch(batchIdx int, batch workload.Batch) error {
	if !d.Verify {
		runTasks(len(batch.Operands), d.NumThreads, d.TaskFactor, func(start, stop int) {
			for i := start; i < stop; i++ {
				d.Tree.FindRoot(batch.Operands[i][0])
			}
		})
		return nil
	}

	observed := hashmap.New[uint32, uint32]()
	runTasks(len(batch.Operands), d.NumThreads, d.TaskFactor, func(start, stop int) {
		for i := start; i < stop; i++ {
			node := batch.Operands[i][0]
			observed.Set(node, d.Tree.FindRoot(node))
		}
	})

	for i, op := range batch.Operands {
		node, want := op[0], op[1]
		got, ok := observed.Get(node)
		if !ok {
			return fmt.Errorf("driver: batch %d, lookup %d: no observed root recorded for node %d", batchIdx, i, node)
		}
		if got != want {
			return &MismatchError{Node: node, Want: want, Got: got, BatchIndex: batchIdx, OperandIndex: i}
		}
	}
	return nil
}
