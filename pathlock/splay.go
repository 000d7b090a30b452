package pathlock

// rotate rotates the edge (x, x.Parent) within x's auxiliary tree. The
// caller must already hold the latch on x's preferred-path representative.
// Identical in structure to forest's rotate (ConcurrentLCT.hpp's rotate),
// since splaying itself needs no synchronization beyond the one latch a
// caller already holds for the whole preferred path.
func (t *Tree) rotate(x int32) {
	nodes := t.nodes
	p := nodes[x].Parent
	g := nodes[p].Parent
	pWasSplayRoot := t.isSplayRoot(p)
	xIsRightChild := nodes[p].Right == x

	if xIsRightChild {
		if nodes[x].Left != null {
			nodes[nodes[x].Left].Parent = p
		}
		nodes[p].Right = nodes[x].Left
		nodes[x].Left = p
	} else {
		if nodes[x].Right != null {
			nodes[nodes[x].Right].Parent = p
		}
		nodes[p].Left = nodes[x].Right
		nodes[x].Right = p
	}
	nodes[p].Parent = x
	nodes[x].Parent = g
	if !pWasSplayRoot {
		if nodes[g].Right == p {
			nodes[g].Right = x
		} else {
			nodes[g].Left = x
		}
	}
}

// splay brings x to the root of its auxiliary tree.
func (t *Tree) splay(x int32) {
	for !t.isSplayRoot(x) {
		p := t.nodes[x].Parent
		if !t.isSplayRoot(p) {
			g := t.nodes[p].Parent
			xRight := t.nodes[p].Right == x
			pRight := t.nodes[g].Right == p
			if xRight == pRight {
				t.rotate(p)
			} else {
				t.rotate(x)
			}
		}
		t.rotate(x)
	}
}
