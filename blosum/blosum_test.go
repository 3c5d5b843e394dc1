package blosum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WalkerRout/dendro/amino"
	"github.com/WalkerRout/dendro/blosum"
)

func TestBLOSUM62Symmetric(t *testing.T) {
	for i := 0; i < amino.NumAminoAcids; i++ {
		for j := 0; j < amino.NumAminoAcids; j++ {
			a, b := amino.AminoAcid(i), amino.AminoAcid(j)
			assert.Equal(t, blosum.BLOSUM62.Score(a, b), blosum.BLOSUM62.Score(b, a))
		}
	}
}

func TestBLOSUM45Symmetric(t *testing.T) {
	for i := 0; i < amino.NumAminoAcids; i++ {
		for j := 0; j < amino.NumAminoAcids; j++ {
			a, b := amino.AminoAcid(i), amino.AminoAcid(j)
			assert.Equal(t, blosum.BLOSUM45.Score(a, b), blosum.BLOSUM45.Score(b, a))
		}
	}
}

func TestBLOSUM62KnownValues(t *testing.T) {
	assert.EqualValues(t, 4, blosum.BLOSUM62.Score(amino.Alanine, amino.Alanine))
	assert.EqualValues(t, -1, blosum.BLOSUM62.Score(amino.Alanine, amino.Arginine))
	assert.EqualValues(t, 11, blosum.BLOSUM62.Score(amino.Tryptophan, amino.Tryptophan))
	assert.EqualValues(t, 1, blosum.BLOSUM62.Score(amino.Stop, amino.Stop))
}

func TestBLOSUM45KnownValues(t *testing.T) {
	assert.EqualValues(t, 5, blosum.BLOSUM45.Score(amino.Alanine, amino.Alanine))
	assert.EqualValues(t, 12, blosum.BLOSUM45.Score(amino.Cysteine, amino.Cysteine))
	assert.EqualValues(t, 1, blosum.BLOSUM45.Score(amino.Stop, amino.Stop))
}
