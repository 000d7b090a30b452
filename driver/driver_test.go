package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-systems/linkcut/forest"
	"github.com/arborist-systems/linkcut/lockcoupling"
	"github.com/arborist-systems/linkcut/pathlock"
	"github.com/arborist-systems/linkcut/unionfind"
	"github.com/arborist-systems/linkcut/workload"
)

// TestEmptyBatchSpawnsNoThreads checks that an empty LOOKUP batch completes
// without panicking even with a trivially small thread/task configuration.
func TestEmptyBatchSpawnsNoThreads(t *testing.T) {
	d := New(forest.New(1), 4, 4)
	trace := workload.Trace{{Kind: workload.OpLookup, Operands: nil}}
	require.NoError(t, d.Run(trace))
}

// TestSequentialFallbackWhenTaskSizeZero covers the task_size == 0 branch:
// the driver executes the whole batch on the calling goroutine.
func TestSequentialFallbackWhenTaskSizeZero(t *testing.T) {
	d := New(forest.New(8), 16, 16) // count=7 operands, taskSize = 7/(16*16) = 0
	trace := workload.Trace{
		{Kind: workload.OpLink, Operands: [][2]uint32{{1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {7, 3}}},
	}
	require.NoError(t, d.Run(trace))
	require.True(t, d.Tree.AreConnected(7, 0))
}

// TestScenarioCKAryTreeLookupBatch builds a binary tree of 1023 nodes,
// links it in, then runs a verified lookup batch over its second half of
// labels against the lock-coupling backend.
func TestScenarioCKAryTreeLookupBatch(t *testing.T) {
	const n = 1023
	links := make([][2]uint32, 0, n-1)
	for i := 1; i < n; i++ {
		links = append(links, [2]uint32{uint32(i), uint32((i - 1) / 2)})
	}
	lookups := make([][2]uint32, 0, n-512)
	for i := 512; i < n; i++ {
		lookups = append(lookups, [2]uint32{uint32(i), 0})
	}

	tr := lockcoupling.New(n)
	d := &Driver{Tree: tr, NumThreads: 8, TaskFactor: 4, Verify: true}
	trace := workload.Trace{
		{Kind: workload.OpLink, Operands: links},
		{Kind: workload.OpLookup, Operands: lookups},
	}
	require.NoError(t, d.Run(trace))
}

func TestLookupBatchVerifyReportsMismatch(t *testing.T) {
	tr := forest.New(3)
	d := &Driver{Tree: tr, NumThreads: 2, TaskFactor: 1, Verify: true}
	trace := workload.Trace{
		{Kind: workload.OpLink, Operands: [][2]uint32{{1, 0}}},
		{Kind: workload.OpLookup, Operands: [][2]uint32{{1, 2}}}, // wrong expected root
	}
	err := d.Run(trace)
	require.Error(t, err)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.EqualValues(t, 1, mismatch.Node)
}

func TestPathlockDriverAgreesWithOracle(t *testing.T) {
	const n = 500
	links := make([][2]uint32, 0, n-1)
	for i := 1; i < n; i++ {
		links = append(links, [2]uint32{uint32(i), uint32(i - 1)})
	}
	lookups := make([][2]uint32, 0, n)
	for i := 0; i < n; i++ {
		lookups = append(lookups, [2]uint32{uint32(i), 0})
	}

	tr := pathlock.New(n)
	d := &Driver{Tree: tr, NumThreads: 6, TaskFactor: 2, Verify: true}
	trace := workload.Trace{
		{Kind: workload.OpLink, Operands: links},
		{Kind: workload.OpLookup, Operands: lookups},
	}
	require.NoError(t, d.Run(trace))
}

// TestPathlockCutWorkloadSampledPairsAgreeWithOracle runs a generated random
// tree CUT workload over 10000 nodes through the path-lock backend, then
// independently rebuilds the surviving edge set into a unionfind.Oracle and
// cross-checks 100 sampled connected pairs (and the overall component
// count) against the driven tree.
func TestPathlockCutWorkloadSampledPairsAgreeWithOracle(t *testing.T) {
	const n = 10000
	trace, err := workload.Generate(workload.Options{N: n, Shape: "random", Kind: "cut", Beta: 1000, Seed: 7})
	require.NoError(t, err)

	tr := pathlock.New(n)
	d := &Driver{Tree: tr, NumThreads: 4, TaskFactor: 4, Verify: true}
	require.NoError(t, d.Run(trace))

	parentOf := make(map[uint32]uint32)
	for _, batch := range trace {
		switch batch.Kind {
		case workload.OpLink:
			for _, op := range batch.Operands {
				parentOf[op[0]] = op[1]
			}
		case workload.OpCut:
			for _, op := range batch.Operands {
				delete(parentOf, op[0])
			}
		}
	}

	uf := unionfind.New(n)
	for child, parent := range parentOf {
		uf.Union(child, parent)
	}

	labels := make([]uint32, n)
	for i := range labels {
		labels[i] = uint32(i)
	}

	pairs := uf.SampleConnectedPairs(labels, 100)
	require.NotEmpty(t, pairs)
	for _, pair := range pairs {
		require.True(t, tr.AreConnected(pair[0], pair[1]))
	}

	roots := make(map[uint32]struct{})
	for _, label := range labels {
		roots[tr.FindRoot(label)] = struct{}{}
	}
	require.Equal(t, uf.Components(labels), len(roots))
}
