package unionfind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsAllSingletons(t *testing.T) {
	o := New(5)
	for i := uint32(0); i < 5; i++ {
		require.EqualValues(t, i, o.Find(i))
	}
}

func TestUnionMergesAndConnects(t *testing.T) {
	o := New(4)
	require.True(t, o.Union(0, 1))
	require.True(t, o.Connected(0, 1))
	require.False(t, o.Connected(0, 2))

	require.False(t, o.Union(0, 1))

	require.True(t, o.Union(2, 3))
	require.True(t, o.Union(1, 2))
	require.True(t, o.Connected(0, 3))
}

func TestFindCompressesPath(t *testing.T) {
	o := New(6)
	o.Union(0, 1)
	o.Union(1, 2)
	o.Union(2, 3)
	o.Union(3, 4)
	o.Union(4, 5)

	root := o.Find(5)
	for i := uint32(0); i < 6; i++ {
		require.Equal(t, root, o.entries[i].parent,
			"label %d should point directly at the root after Find compresses its path", i)
	}
}

func TestComponentsCountsDistinctSets(t *testing.T) {
	o := New(6)
	o.Union(0, 1)
	o.Union(2, 3)

	labels := []uint32{0, 1, 2, 3, 4, 5}
	require.Equal(t, 4, o.Components(labels))
}

func TestSampleConnectedPairsOnlyReturnsTrueConnections(t *testing.T) {
	o := New(8)
	o.Union(0, 1)
	o.Union(1, 2)
	o.Union(3, 4)

	labels := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	pairs := o.SampleConnectedPairs(labels, 10)
	require.NotEmpty(t, pairs)
	for _, p := range pairs {
		require.True(t, o.Connected(p[0], p[1]))
	}
}
