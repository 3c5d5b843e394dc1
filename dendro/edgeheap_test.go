package dendro

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeHeapPopsDescendingBySimilarity(t *testing.T) {
	edges := []edge{
		{i: 0, j: 1, similarity: 3},
		{i: 0, j: 2, similarity: 9},
		{i: 1, j: 2, similarity: 1},
	}
	h := buildHeap(edges)

	var got []int32
	for h.Len() > 0 {
		e := heap.Pop(h).(edge)
		got = append(got, e.similarity)
	}
	assert.Equal(t, []int32{9, 3, 1}, got)
}

func TestEdgeHeapTieBreaksOnIndices(t *testing.T) {
	// all three edges share the same similarity; pop order must be
	// deterministic, ascending on (i, j).
	edges := []edge{
		{i: 2, j: 3, similarity: 5},
		{i: 0, j: 3, similarity: 5},
		{i: 0, j: 1, similarity: 5},
	}
	h := buildHeap(edges)

	var got [][2]int
	for h.Len() > 0 {
		e := heap.Pop(h).(edge)
		got = append(got, [2]int{e.i, e.j})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {2, 3}}, got)
}
