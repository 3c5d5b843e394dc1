// Package align computes the optimal global alignment score of two
// amino-acid sequences using the Needleman-Wunsch recurrence over a
// substitution matrix and a linear gap penalty.
//
// Only the score is computed, never a traceback: the clustering core only
// ever needs a single similarity number per pair.
package align
