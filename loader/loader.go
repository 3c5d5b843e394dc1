package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/WalkerRout/dendro/amino"
	"github.com/WalkerRout/dendro/dendro"
)

// Load reads the JSON document at path — an object mapping species name to
// amino-acid sequence string — and returns the decoded species sorted by
// name.
func Load(path string) ([]dendro.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	return decode(f, false)
}

// StrictLoad behaves like Load, but rejects any sequence containing a byte
// outside the 24 recognized amino-acid letters. Unlike amino.Parse, which
// never fails, StrictLoad surfaces unrecognized input as an error instead
// of silently mapping it to Unknown.
func StrictLoad(path string) ([]dendro.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	return decode(f, true)
}

// ErrUnrecognizedSymbol is returned by StrictLoad when a sequence contains
// a byte outside the canonical 24-letter alphabet.
type ErrUnrecognizedSymbol struct {
	Species string
	Symbol  byte
}

func (e *ErrUnrecognizedSymbol) Error() string {
	return fmt.Sprintf("loader: species %q contains unrecognized symbol %q", e.Species, e.Symbol)
}

const recognized = "ARNDCQEGHILKMFPSTWYVBZX*"

func decode(r io.Reader, strict bool) ([]dendro.Species, error) {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("loader: decode: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	species := make([]dendro.Species, 0, len(names))
	for _, name := range names {
		seqStr := raw[name]
		if strict {
			for i := 0; i < len(seqStr); i++ {
				if c := seqStr[i]; !isRecognized(c) {
					return nil, &ErrUnrecognizedSymbol{Species: name, Symbol: c}
				}
			}
		}
		species = append(species, dendro.Species{Name: name, Seq: amino.ParseSequence(seqStr)})
	}

	return species, nil
}

func isRecognized(c byte) bool {
	for i := 0; i < len(recognized); i++ {
		if recognized[i] == c {
			return true
		}
	}

	return false
}
