package align

import (
	"github.com/WalkerRout/dendro/amino"
	"github.com/WalkerRout/dendro/blosum"
)

// Buffer holds the rolling DP rows reused across repeated alignments so
// that a single goroutine aligning many sequence pairs (as the dendro
// package's parallel edge producer does, one Buffer per worker) does not
// allocate a fresh row pair for every pair it scores.
type Buffer struct {
	prev []int32
	curr []int32
}

// NewBuffer returns a Buffer whose rows can hold alignments against a
// sequence up to capacity residues long without reallocating. A zero-value
// Buffer is also valid; it grows its rows lazily on first use.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		prev: make([]int32, 0, capacity+1),
		curr: make([]int32, 0, capacity+1),
	}
}

// Score returns the optimal Needleman-Wunsch global alignment score of a
// against b under matrix m with linear gap penalty gap (conventionally
// negative). Score is total: any two sequences over the 24-symbol alphabet,
// including empty ones, produce a result.
//
// Score evaluates in O(len(a)*len(b)) time using O(min(len(a),len(b)))
// additional memory: only two rolling rows of the DP table are kept.
func Score(a, b amino.Sequence, m *blosum.Matrix, gap int32) int32 {
	buf := NewBuffer(min(len(a), len(b)))

	return buf.Score(a, b, m, gap)
}

// Score runs the same algorithm as the package-level Score, reusing buf's
// rows instead of allocating new ones. buf may be reused for any number of
// subsequent calls, growing its rows only when a wider sequence pair is
// seen.
func (buf *Buffer) Score(a, b amino.Sequence, m *blosum.Matrix, gap int32) int32 {
	// keep b as the shorter sequence so the rolling rows stay as small as
	// possible; the recurrence is symmetric in a/b so this never changes
	// the result (see TestScoreSymmetric).
	if len(a) < len(b) {
		a, b = b, a
	}
	n := len(b)

	prev := buf.row(&buf.prev, n+1)
	curr := buf.row(&buf.curr, n+1)

	// H[0][j] = j * gap: aligning an empty prefix of a against the first j
	// residues of b costs j gap penalties.
	for j := 0; j <= n; j++ {
		prev[j] = int32(j) * gap
	}

	for i := 1; i <= len(a); i++ {
		// H[i][0] = i * gap
		curr[0] = int32(i) * gap
		ai := a[i-1]
		for j := 1; j <= n; j++ {
			diag := prev[j-1] + m.Score(ai, b[j-1])
			up := prev[j] + gap
			left := curr[j-1] + gap
			curr[j] = max(diag, max(up, left))
		}
		prev, curr = curr, prev
	}

	// after the final swap, the last computed row lives in prev.
	buf.prev, buf.curr = prev, curr

	return prev[n]
}

// row returns *slice resized to exactly length n, reusing its backing array
// when capacity allows. A reused row keeps its old contents; Score writes
// every cell before reading it.
func (buf *Buffer) row(slice *[]int32, n int) []int32 {
	if cap(*slice) < n {
		*slice = make([]int32, n)
	} else {
		*slice = (*slice)[:n]
	}

	return *slice
}

