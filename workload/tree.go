package workload

// rng is the same xorshift64 generator original_source/build_concurrent_workload.cc
// seeds at a fixed constant, kept here so a given (n, shape, seed) always
// produces byte-identical trace files.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	return &rng{state: seed}
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// intn returns a value in [lower, upper], inclusive.
func (r *rng) intn(lower, upper uint32) uint32 {
	if upper <= lower {
		return lower
	}
	return lower + uint32(r.next()%uint64(upper-lower+1))
}

// buildEdges converts a parent array (tree[i] == i means i is a root) into
// the (child, parent) edge list, skipping self-roots.
func buildEdges(tree []uint32) [][2]uint32 {
	var edges [][2]uint32
	for i, p := range tree {
		if uint32(i) == p {
			continue
		}
		edges = append(edges, [2]uint32{uint32(i), p})
	}
	return edges
}

// buildRandomTree builds a uniformly random rooted tree on n labels: each
// node i > 0 picks a uniformly random parent in [0, i).
func buildRandomTree(n int, seed uint64) [][2]uint32 {
	tree := make([]uint32, n)
	r := newRNG(seed)
	for i := 1; i < n; i++ {
		tree[i] = r.intn(0, uint32(i-1))
	}
	return buildEdges(tree)
}

// buildKAryTree builds the complete k-ary tree on n labels: node i > 0's
// parent is (i-1)/k.
func buildKAryTree(n, k int) [][2]uint32 {
	tree := make([]uint32, n)
	for i := 1; i < n; i++ {
		tree[i] = uint32((i - 1) / k)
	}
	return buildEdges(tree)
}

// shuffle permutes edges in place using r, Fisher-Yates.
func shuffle(edges [][2]uint32, r *rng) {
	for i := len(edges) - 1; i > 0; i-- {
		j := r.intn(0, uint32(i))
		edges[i], edges[j] = edges[j], edges[i]
	}
}
