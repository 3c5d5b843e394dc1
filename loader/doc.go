// Package loader reads the external collaborator input format: a JSON
// object mapping species name to amino-acid sequence string. It applies
// amino.ParseSequence to each value and returns the resulting
// []dendro.Species in a stable, name-sorted order so that downstream
// pairwise index ordering does not depend on Go's randomized map
// iteration.
package loader
