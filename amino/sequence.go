package amino

// Sequence is an ordered, finite sequence of AminoAcid. A Sequence may be
// empty. Once constructed it is treated as immutable by every consumer in
// this module; nothing in dendro or align mutates a Sequence in place.
type Sequence []AminoAcid

// ParseSequence builds a Sequence from a raw string of amino-acid
// characters by applying Parse to each byte in order. Like Parse, this is
// total: no input string can cause an error.
func ParseSequence(s string) Sequence {
	seq := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = Parse(s[i])
	}

	return seq
}

// String reconstructs the canonical letter string for the sequence.
func (s Sequence) String() string {
	b := make([]byte, len(s))
	for i, a := range s {
		b[i] = letters[a]
	}

	return string(b)
}
