package dendro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WalkerRout/dendro/blosum"
)

func TestManagerMergeProducesSingleRoot(t *testing.T) {
	sp := []Species{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	m := newManager(sp)

	ca, cb := m.current(0), m.current(1)
	assert.NotEqual(t, ca, cb)
	newIdx := m.addCluster(Node{Left: m.clusters[ca], Right: m.clusters[cb], Similarity: 10})
	m.merge(ca, cb, newIdx)

	assert.Equal(t, m.current(0), m.current(1))
	assert.Equal(t, newIdx, m.current(0))

	cc := m.current(2)
	cab := m.current(0)
	newIdx2 := m.addCluster(Node{Left: m.clusters[cab], Right: m.clusters[cc], Similarity: 5})
	m.merge(cab, cc, newIdx2)

	assert.Equal(t, newIdx2, m.clusterMap[0])
	root, ok := m.root().(Node)
	assert.True(t, ok)
	assert.EqualValues(t, 5, root.Similarity)
}

func TestComputeEdgesCoversAllPairs(t *testing.T) {
	sp := []Species{
		{Name: "A", Seq: nil},
		{Name: "B", Seq: nil},
		{Name: "C", Seq: nil},
		{Name: "D", Seq: nil},
	}
	edges := computeEdges(sp, &blosum.BLOSUM62, -5)
	assert.Len(t, edges, 6)

	seen := make(map[[2]int]bool)
	for _, e := range edges {
		assert.Less(t, e.i, e.j)
		seen[[2]int{e.i, e.j}] = true
	}
	assert.Len(t, seen, 6)
}
