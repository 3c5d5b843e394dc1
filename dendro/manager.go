package dendro

import "github.com/WalkerRout/dendro/unionfind"

// manager owns the growing forest of ClusterTree nodes produced while
// merging species, and the mapping from each original species index to the
// cluster-tree index it currently belongs to.
type manager struct {
	uf         *unionfind.DSU
	clusters   []ClusterTree // leaves 0..n-1, internal nodes n..2n-2
	clusterMap []int         // species index -> current cluster index
}

// newManager seeds a manager with one Leaf cluster per species.
func newManager(species []Species) *manager {
	n := len(species)
	clusters := make([]ClusterTree, n, max(2*n-1, n))
	clusterMap := make([]int, n)
	for i, s := range species {
		clusters[i] = Leaf{Name: s.Name}
		clusterMap[i] = i
	}

	return &manager{
		uf:         unionfind.New(2 * n),
		clusters:   clusters,
		clusterMap: clusterMap,
	}
}

// current returns the cluster-tree index currently holding the given
// species, resolved through the disjoint-set's current root.
func (m *manager) current(speciesIdx int) int {
	return m.uf.Find(m.clusterMap[speciesIdx])
}

// addCluster appends a new cluster tree node and returns its index.
func (m *manager) addCluster(t ClusterTree) int {
	m.clusters = append(m.clusters, t)

	return len(m.clusters) - 1
}

// merge unions the disjoint-set components rooted at a and b (both of
// which must already be roots, as returned by current), then repoints
// every species whose current root was a or b at newIdx.
//
// a and b are compared directly rather than against the post-union root:
// union-by-size guarantees the surviving root is always one of the two
// roots passed in, never a third value, so this single linear scan
// correctly migrates every affected species in O(n) time.
func (m *manager) merge(a, b, newIdx int) {
	m.uf.Union(a, b)
	for i, c := range m.clusterMap {
		if cur := m.uf.Find(c); cur == a || cur == b {
			m.clusterMap[i] = newIdx
		}
	}
}

// root returns the final merged cluster tree. Valid only after exactly
// N-1 successful merges have occurred.
func (m *manager) root() ClusterTree {
	return m.clusters[m.clusterMap[0]]
}
