// Package dendro builds a phylogenetic dendrogram from a set of named
// amino-acid sequences.
//
// Cluster computes every pairwise Needleman-Wunsch alignment score (package
// align) between the input species, then runs a Kruskal-style
// maximum-spanning-forest merge over a disjoint-set union (package
// unionfind): edges are consumed in descending similarity order and two
// clusters are merged whenever they are not already connected, until a
// single cluster — the root ClusterTree — remains.
//
// The resulting ClusterTree is a binary tree: every Leaf names one input
// species, and every Node records the similarity score of the edge that
// caused its two children to merge. Similarities are non-decreasing along
// any root-to-leaf path (the root holds the smallest), since Kruskal
// consumes the largest similarities first and a parent is always merged
// after its children.
package dendro
