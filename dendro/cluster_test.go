package dendro_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WalkerRout/dendro/amino"
	"github.com/WalkerRout/dendro/dendro"
)

func species(pairs ...[2]string) []dendro.Species {
	out := make([]dendro.Species, len(pairs))
	for i, p := range pairs {
		out[i] = dendro.Species{Name: p[0], Seq: amino.ParseSequence(p[1])}
	}

	return out
}

func TestClusterEmptyInput(t *testing.T) {
	tree, err := dendro.Cluster(nil)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestClusterSingleSpecies(t *testing.T) {
	tree, err := dendro.Cluster(species([2]string{"A", "ARND"}))
	require.NoError(t, err)
	leaf, ok := tree.(dendro.Leaf)
	require.True(t, ok)
	assert.Equal(t, "A", leaf.Name)
}

func TestClusterTwoSpecies(t *testing.T) {
	tree, err := dendro.Cluster(species(
		[2]string{"A", "ARND"},
		[2]string{"B", "ARNE"},
	))
	require.NoError(t, err)
	node, ok := tree.(dendro.Node)
	require.True(t, ok)
	names := leafNames(t, node)
	sort.Strings(names)
	assert.Equal(t, []string{"A", "B"}, names)
}

// nineSpecies is a nine-way end-to-end fixture large enough to exercise
// multiple merge rounds and a non-trivial tree shape.
func nineSpecies() []dendro.Species {
	return species(
		[2]string{"A", "ARND"},
		[2]string{"B", "ARNE"},
		[2]string{"C", "ARNS"},
		[2]string{"D", "RRDD"},
		[2]string{"E", "RRDS"},
		[2]string{"F", "RRDA"},
		[2]string{"G", "ARDD"},
		[2]string{"H", "ARDS"},
		[2]string{"I", "RRNS"},
	)
}

func TestClusterNineSpeciesShape(t *testing.T) {
	tree, err := dendro.Cluster(nineSpecies())
	require.NoError(t, err)
	require.NotNil(t, tree)

	leaves, internal := countNodes(tree)
	assert.Equal(t, 9, leaves)
	assert.Equal(t, 8, internal)

	names := leafNames(t, tree)
	sort.Strings(names)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}, names)

	assertMonotoneSimilarity(t, tree, nil)
}

func TestClusterDeterministic(t *testing.T) {
	sp := nineSpecies()
	first, err := dendro.Cluster(sp)
	require.NoError(t, err)
	second, err := dendro.Cluster(sp)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClusterLeafPreservationWithDuplicateNames(t *testing.T) {
	tree, err := dendro.Cluster(species(
		[2]string{"X", "ARND"},
		[2]string{"X", "ARNE"},
		[2]string{"Y", "RRDD"},
	))
	require.NoError(t, err)
	names := leafNames(t, tree)
	sort.Strings(names)
	assert.Equal(t, []string{"X", "X", "Y"}, names)
}

// leafNames collects every Leaf.Name in tree via recursive walk.
func leafNames(t *testing.T, tree dendro.ClusterTree) []string {
	t.Helper()
	var names []string
	var walk func(dendro.ClusterTree)
	walk = func(n dendro.ClusterTree) {
		switch v := n.(type) {
		case dendro.Leaf:
			names = append(names, v.Name)
		case dendro.Node:
			walk(v.Left)
			walk(v.Right)
		default:
			t.Fatalf("unexpected ClusterTree implementation %T", n)
		}
	}
	walk(tree)

	return names
}

// countNodes returns the number of Leaf and Node values reachable from tree.
func countNodes(tree dendro.ClusterTree) (leaves, internal int) {
	switch v := tree.(type) {
	case dendro.Leaf:
		return 1, 0
	case dendro.Node:
		ll, li := countNodes(v.Left)
		rl, ri := countNodes(v.Right)

		return ll + rl, li + ri + 1
	default:
		return 0, 0
	}
}

// assertMonotoneSimilarity checks that similarities are non-decreasing
// along every root-to-leaf path: a child Node is merged before its parent,
// so its Similarity must never be below its parent's.
func assertMonotoneSimilarity(t *testing.T, tree dendro.ClusterTree, parentSim *int32) {
	t.Helper()
	node, ok := tree.(dendro.Node)
	if !ok {
		return
	}
	if parentSim != nil {
		assert.GreaterOrEqual(t, node.Similarity, *parentSim)
	}
	sim := node.Similarity
	assertMonotoneSimilarity(t, node.Left, &sim)
	assertMonotoneSimilarity(t, node.Right, &sim)
}
