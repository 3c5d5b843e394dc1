package dendro

import (
	"container/heap"
	"log"

	"gonum.org/v1/gonum/stat"

	"github.com/WalkerRout/dendro/blosum"
)

// config holds the Cluster's tunable parameters. Use Option functions to
// change individual fields; defaultConfig (the starting point every Option
// is applied to) matches the system's fixed defaults: BLOSUM62 and a
// linear gap penalty of -5.
type config struct {
	matrix *blosum.Matrix
	gap    int32
	logger *log.Logger
}

func defaultConfig() config {
	return config{
		matrix: &blosum.BLOSUM62,
		gap:    -5,
		logger: nil,
	}
}

// Option configures a Cluster call.
type Option func(*config)

// WithMatrix selects the substitution matrix used by the pairwise aligner.
// The default is blosum.BLOSUM62.
func WithMatrix(m *blosum.Matrix) Option {
	return func(c *config) { c.matrix = m }
}

// WithGapPenalty sets the linear gap penalty (conventionally negative)
// used by the pairwise aligner. The default is -5.
func WithGapPenalty(gap int32) Option {
	return func(c *config) { c.gap = gap }
}

// WithLogger enables diagnostic logging of the computed edge set (count,
// mean and standard deviation of similarity) before Kruskal merging
// begins. Diagnostics never influence the clustering result; a nil logger
// (the default) disables them entirely.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Cluster builds a phylogenetic dendrogram from species by computing every
// pairwise alignment similarity and greedily merging the most-similar
// disjoint clusters (Kruskal's algorithm over the complete similarity
// graph), until one cluster remains.
//
// Cluster returns (nil, nil) for an empty species list, a bare Leaf for a
// single species, and otherwise the root Node of the merged tree. Cluster
// never returns a non-nil error: it is a pure function of its inputs, with
// no I/O, no network, and no mutable external state (failure to allocate
// is a fatal host-level condition, not a recoverable error). The error
// return exists so ambient callers such as the CLI can compose
// Cluster into their own fallible pipelines uniformly.
func Cluster(species []Species, opts ...Option) (ClusterTree, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(species)
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return Leaf{Name: species[0].Name}, nil
	}

	edges := computeEdges(species, cfg.matrix, cfg.gap)
	logDiagnostics(cfg.logger, edges)

	h := buildHeap(edges)
	mgr := newManager(species)

	merges := 0
	for h.Len() > 0 && merges < n-1 {
		e := heap.Pop(h).(edge)
		ca, cb := mgr.current(e.i), mgr.current(e.j)
		if ca == cb {
			continue // already in the same cluster; skip without consuming a merge
		}

		newNode := Node{
			Left:       mgr.clusters[ca],
			Right:      mgr.clusters[cb],
			Similarity: e.similarity,
		}
		newIdx := mgr.addCluster(newNode)
		mgr.merge(ca, cb, newIdx)
		merges++
	}

	return mgr.root(), nil
}

// logDiagnostics reports the size and similarity distribution of the edge
// set computed for this clustering run. It is a no-op when logger is nil
// (the default) or there are no edges to summarize.
func logDiagnostics(logger *log.Logger, edges []edge) {
	if logger == nil || len(edges) == 0 {
		return
	}

	sims := make([]float64, len(edges))
	for i, e := range edges {
		sims[i] = float64(e.similarity)
	}
	mean, stddev := stat.MeanStdDev(sims, nil)
	logger.Printf("dendro: computed %d edges, similarity mean=%.2f stddev=%.2f", len(edges), mean, stddev)
}
