// Package dotgraph renders a dendro.ClusterTree as a GraphViz DOT digraph,
// the external rendering collaborator described by the clustering core: it
// walks the tree in pre-order, assigning sequential node ids (root = 0,
// then the left subtree, then the right subtree), emits one box-shaped
// node per leaf and one "sim: <similarity>" node per internal merge, and
// connects each parent to its two children.
package dotgraph
