// Package amino defines the fixed 24-symbol amino-acid alphabet used
// throughout dendro: the 20 standard residues, the two ambiguity codes
// Asx/Glx, the Unknown code, and the Stop marker. The enumeration's order
// is fixed by the NCBI BLOSUM publication order and doubles as the
// row/column index into every substitution matrix in package blosum.
package amino

// AminoAcid is one of the 24 symbols of the alphabet. Its zero value is
// Alanine, matching index 0 of the BLOSUM tables.
type AminoAcid uint8

// The 24 variants, in BLOSUM row/column order. Do not reorder these: their
// values are used directly as indices into blosum.Matrix.
const (
	Alanine AminoAcid = iota
	Arginine
	Asparagine
	AsparticAcid
	Cysteine
	Glutamine
	GlutamicAcid
	Glycine
	Histidine
	Isoleucine
	Leucine
	Lysine
	Methionine
	Phenylalanine
	Proline
	Serine
	Threonine
	Tryptophan
	Tyrosine
	Valine
	Asx
	Glx
	Unknown
	Stop

	// NumAminoAcids is the size of the alphabet, and the dimension of every
	// substitution matrix in package blosum.
	NumAminoAcids = int(Stop) + 1
)

// letters holds the canonical single-character code for each variant, in
// the same order as the constants above.
var letters = [NumAminoAcids]byte{
	'A', 'R', 'N', 'D', 'C', 'Q', 'E', 'G', 'H', 'I',
	'L', 'K', 'M', 'F', 'P', 'S', 'T', 'W', 'Y', 'V',
	'B', 'Z', 'X', '*',
}

// Parse maps a single character to its AminoAcid. The mapping is total and
// case-sensitive: any byte not present in the canonical letter set maps to
// Unknown rather than failing. Parse never returns an error.
func Parse(c byte) AminoAcid {
	for i, l := range letters {
		if l == c {
			return AminoAcid(i)
		}
	}

	return Unknown
}

// String returns the canonical single-character code for a, e.g. "A" for
// Alanine. Values outside the 24-symbol range return "X", the same code
// used for Unknown.
func (a AminoAcid) String() string {
	if int(a) >= NumAminoAcids {
		return "X"
	}

	return string(letters[a])
}
