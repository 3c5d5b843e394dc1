// Command dendro builds a phylogenetic dendrogram from a JSON file mapping
// species name to amino-acid sequence, and writes the resulting tree as
// GraphViz DOT source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/WalkerRout/dendro/blosum"
	"github.com/WalkerRout/dendro/dendro"
	"github.com/WalkerRout/dendro/dotgraph"
	"github.com/WalkerRout/dendro/loader"
)

var (
	in     = flag.String("in", "", "path to a JSON file mapping species name to sequence (required)")
	out    = flag.String("out", "", "path to write DOT output (default stdout)")
	gap    = flag.Int("gap", -5, "linear gap penalty applied during alignment")
	matrix = flag.String("matrix", "blosum62", "substitution matrix: blosum62 or blosum45")
	strict = flag.Bool("strict", false, "reject sequences containing unrecognized symbols")
	errLog = flag.String("err", "", "path to write log output (default stderr)")
)

func main() {
	flag.Parse()

	if *errLog != "" {
		f, err := os.OpenFile(*errLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("dendro: open error log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	m, err := selectMatrix(*matrix)
	if err != nil {
		log.Fatalf("dendro: %v", err)
	}

	species, err := load(*in, *strict)
	if err != nil {
		log.Fatalf("dendro: %v", err)
	}

	logger := log.New(log.Writer(), "", log.LstdFlags)
	tree, err := dendro.Cluster(species,
		dendro.WithMatrix(m),
		dendro.WithGapPenalty(int32(*gap)),
		dendro.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("dendro: cluster: %v", err)
	}

	dot, err := dotgraph.Render(tree)
	if err != nil {
		log.Fatalf("dendro: render: %v", err)
	}

	if err := write(*out, dot); err != nil {
		log.Fatalf("dendro: %v", err)
	}
}

func selectMatrix(name string) (*blosum.Matrix, error) {
	switch name {
	case "blosum62":
		return &blosum.BLOSUM62, nil
	case "blosum45":
		return &blosum.BLOSUM45, nil
	default:
		return nil, fmt.Errorf("unknown matrix %q (want blosum62 or blosum45)", name)
	}
}

func load(path string, strict bool) ([]dendro.Species, error) {
	if strict {
		return loader.StrictLoad(path)
	}

	return loader.Load(path)
}

func write(path, dot string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, dot)
		return err
	}

	return os.WriteFile(path, []byte(dot), 0o644)
}
