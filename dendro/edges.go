package dendro

import (
	"container/heap"
	"runtime"
	"sync"

	"github.com/WalkerRout/dendro/align"
	"github.com/WalkerRout/dendro/blosum"
)

// computeEdges scores every unordered pair (i, j), i < j, of the given
// species and returns the N*(N-1)/2 resulting edges. Pairs are distributed
// across a bounded pool of worker goroutines sized to GOMAXPROCS; each
// worker owns a private align.Buffer so no DP row is ever shared across
// goroutines. Workers write their results into disjoint slots of a
// preallocated slice, so no locking is needed to reduce them back into a
// single collection.
func computeEdges(species []Species, m *blosum.Matrix, gap int32) []edge {
	n := len(species)
	edges := make([]edge, n*(n-1)/2)
	if len(edges) == 0 {
		return edges
	}

	type pair struct {
		slot, i, j int
	}
	pairs := make(chan pair, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(edges) {
		workers = len(edges)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := align.NewBuffer(0)
			for p := range pairs {
				sim := buf.Score(species[p.i].Seq, species[p.j].Seq, m, gap)
				edges[p.slot] = edge{i: p.i, j: p.j, similarity: sim}
			}
		}()
	}

	slot := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs <- pair{slot, i, j}
			slot++
		}
	}
	close(pairs)
	wg.Wait()

	return edges
}

// buildHeap heapifies edges into a max-ordered edgeHeap ready for
// repeated Pop calls in descending similarity order.
func buildHeap(edges []edge) *edgeHeap {
	h := edgeHeap(edges)
	heap.Init(&h)

	return &h
}
