package dendro

import "github.com/WalkerRout/dendro/amino"

// Species pairs an opaque name label with its amino-acid sequence.
// Uniqueness of Name is not required: duplicate names simply produce
// duplicate leaves in the resulting tree.
type Species struct {
	Name string
	Seq  amino.Sequence
}

// ClusterTree is a rooted binary tree over species names. It has exactly
// two implementations, Leaf and Node; no other type may implement it.
type ClusterTree interface {
	clusterTree()
}

// Leaf is a ClusterTree holding a single input species name.
type Leaf struct {
	Name string
}

func (Leaf) clusterTree() {}

// Node is an internal ClusterTree node formed by merging Left and Right at
// the given Similarity score. Left/Right ordering carries no semantic
// meaning; only the set of similarities appearing on internal nodes is
// determined by the input (see the edgeHeap doc).
type Node struct {
	Left, Right ClusterTree
	Similarity  int32
}

func (Node) clusterTree() {}

// edge is an unordered pair of species indices with their alignment
// similarity. i is always less than j.
type edge struct {
	i, j       int
	similarity int32
}
