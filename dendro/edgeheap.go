package dendro

// edgeHeap is a container/heap.Interface max-heap over edge.similarity. Ties
// break on ascending (i, j) so that, for a fixed input ordering, repeated
// Cluster calls always pop edges in the same order. The multiset of
// similarities used on internal nodes does not depend on this choice (it is
// invariant under any tie-break, by the matroid property of Kruskal's
// algorithm).
type edgeHeap []edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(a, b int) bool {
	if h[a].similarity != h[b].similarity {
		return h[a].similarity > h[b].similarity // max-heap: larger similarity first
	}
	if h[a].i != h[b].i {
		return h[a].i < h[b].i
	}

	return h[a].j < h[b].j
}

func (h edgeHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }

func (h *edgeHeap) Push(x any) {
	*h = append(*h, x.(edge))
}

func (h *edgeHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
