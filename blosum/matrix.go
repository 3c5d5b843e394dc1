// Package blosum provides the fixed 24x24 BLOSUM substitution score tables
// (BLOSUM62 and BLOSUM45) addressed by amino.AminoAcid index, per
// https://ftp.ncbi.nlm.nih.gov/blast/matrices/.
package blosum

import "github.com/WalkerRout/dendro/amino"

// Matrix is a flat, square substitution table indexed by amino.AminoAcid.
// Every row/column index corresponds to the amino.AminoAcid constant of the
// same numeric value; the table is symmetric.
type Matrix [amino.NumAminoAcids][amino.NumAminoAcids]int32

// Score returns the substitution score for aligning a against b under this
// matrix. Score is total over the full 24-symbol alphabet.
func (m *Matrix) Score(a, b amino.AminoAcid) int32 {
	return m[a][b]
}
