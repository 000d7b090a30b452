package workload

import "github.com/emirpasic/gods/stacks/arraystack"

// shadowParent is the generator's private "current forest" view: a
// parent[x] array separate from any backend's own node arena, updated as
// edges are synthesized and queried to compute the LOOKUP batches'
// expected roots.
type shadowParent struct {
	parent []int64 // -1 means "no parent recorded" (x is a shadow root)
}

func newShadowParent(n int) *shadowParent {
	p := make([]int64, n)
	for i := range p {
		p[i] = -1
	}
	return &shadowParent{parent: p}
}

func (s *shadowParent) link(x, y uint32) {
	s.parent[x] = int64(y)
}

func (s *shadowParent) unlink(x uint32) {
	s.parent[x] = -1
}

// climb follows the shadow parent chain from x to its current shadow root,
// compressing every node visited along the way. Iterative via an explicit
// stack (gods/stacks/arraystack) rather than recursive, so a deep random
// tree cannot overflow the goroutine stack.
func (s *shadowParent) climb(x uint32) uint32 {
	visited := arraystack.New()
	cur := x
	for s.parent[cur] != -1 {
		visited.Push(cur)
		cur = uint32(s.parent[cur])
	}
	root := cur
	for !visited.Empty() {
		v, _ := visited.Pop()
		s.parent[v.(uint32)] = int64(root)
	}
	return root
}

// rootOf returns x's current shadow root without assuming x has a parent.
func (s *shadowParent) rootOf(x uint32) uint32 {
	if s.parent[x] == -1 {
		return x
	}
	return s.climb(uint32(s.parent[x]))
}
