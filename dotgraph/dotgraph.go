package dotgraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/WalkerRout/dendro/dendro"
)

// node is a single DOT graph node standing in for one ClusterTree value. It
// implements graph.Node, dot.Node (for a stable "nodeN" textual id) and
// encoding.Attributer (for the label/shape attributes rendered alongside it).
type node struct {
	id    int64
	label string
	shape string // "box" for leaves, "" (the GraphViz default) for internal nodes
}

func (n *node) ID() int64 { return n.id }

func (n *node) DOTID() string { return fmt.Sprintf("node%d", n.id) }

func (n *node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: n.label}}
	if n.shape != "" {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: n.shape})
	}

	return attrs
}

// Render returns the GraphViz DOT source for tree. A nil tree (the result
// of clustering zero species) renders as an empty digraph.
func Render(tree dendro.ClusterTree) (string, error) {
	g := simple.NewDirectedGraph()

	if tree != nil {
		walk(g, tree, new(int64))
	}

	data, err := dot.Marshal(g, "ClusterTree", "", "  ")
	if err != nil {
		return "", fmt.Errorf("dotgraph: marshal: %w", err)
	}

	return string(data), nil
}

// walk assigns the next sequential id to t, adds its node, then recurses
// into the left and right subtrees in that order — root = 0, left
// subtree, then right subtree, a pre-order numbering.
func walk(g *simple.DirectedGraph, t dendro.ClusterTree, counter *int64) *node {
	id := *counter
	*counter++

	switch v := t.(type) {
	case dendro.Leaf:
		n := &node{id: id, label: v.Name, shape: "box"}
		g.AddNode(n)

		return n
	case dendro.Node:
		n := &node{id: id, label: fmt.Sprintf("sim: %d", v.Similarity)}
		g.AddNode(n)

		left := walk(g, v.Left, counter)
		g.SetEdge(simple.Edge{F: n, T: left})

		right := walk(g, v.Right, counter)
		g.SetEdge(simple.Edge{F: n, T: right})

		return n
	default:
		panic(fmt.Sprintf("dotgraph: unknown ClusterTree implementation %T", t))
	}
}
