// Package lct defines the common interface satisfied by every link-cut
// forest backend (forest.Tree, pathlock.Tree, lockcoupling.Tree), in the
// same spirit as the teacher's Trees.Tree interface
// (G-M-twostay-Go-Utils/Trees/Trees.go): one contract, several
// implementations with different internal trade-offs, so driver and
// workload can stay backend-agnostic.
package lct

import "strconv"

// Tree is a dynamic forest of rooted trees on a dense label space [0, n),
// maintained under Link/Cut/FindRoot.
//
// Preconditions are programmer contracts: Link panics if x is not
// currently a forest root, Cut panics if x already is one. No
// implementation leaves partial state on a failed precondition, since the
// check happens before any mutation.
type Tree interface {
	// Link makes y the parent of x. Requires x and y to lie in different
	// trees and x to be a forest root.
	Link(x, y uint32)
	// Cut detaches x from its parent, splitting x's tree into two. Requires
	// x not be a forest root.
	Cut(x uint32)
	// FindRoot returns the root of the tree containing x.
	FindRoot(x uint32) uint32
	// AreConnected reports whether x and y lie in the same tree.
	AreConnected(x, y uint32) bool
}

// PreconditionViolation is panicked by Link/Cut when their structural
// preconditions are not met, mirroring the teacher's own habit of panicking
// with a typed value rather than returning an error
// (Trees/base.go's BuildSBTree panics with InvalidSliceError on a failed
// safety check).
type PreconditionViolation struct {
	Op   string
	Node uint32
	Msg  string
}

func (e PreconditionViolation) Error() string {
	return "linkcut: " + e.Op + "(" + strconv.FormatUint(uint64(e.Node), 10) + "): " + e.Msg
}
