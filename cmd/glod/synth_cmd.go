package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glod/synth"
)

var (
	synthKind string
	synthN    int
	synthP    float64
	synthSeed uint32
)

func init() {
	synthCmd.Flags().StringVarP(&synthKind, "kind", "k", "complete", "graph kind: complete, path, cycle, random")
	synthCmd.Flags().IntVarP(&synthN, "n", "n", 10, "vertex count")
	synthCmd.Flags().Float64VarP(&synthP, "p", "p", 0.2, "edge probability (random kind only)")
	synthCmd.Flags().Uint32VarP(&synthSeed, "seed", "s", glodCLIDefaultSeed, "RNG seed (random kind only)")
}

const glodCLIDefaultSeed = 42

func runSynth(cmd *cobra.Command, args []string) error {
	var ctor synth.Constructor
	switch synthKind {
	case "complete":
		ctor = synth.Complete(synthN)
	case "path":
		ctor = synth.Path(synthN)
	case "cycle":
		ctor = synth.Cycle(synthN)
	case "random":
		ctor = synth.RandomSparse(synthN, synthP, synthSeed)
	default:
		return fmt.Errorf("glod: unknown synth kind %q", synthKind)
	}

	g, err := synth.Build(ctor)
	if err != nil {
		return fmt.Errorf("glod: synth: %w", err)
	}

	fmt.Fprintf(os.Stdout, "nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	for _, u := range g.Nodes() {
		neighbors, _ := g.Neighbors(u)
		fmt.Fprintf(os.Stdout, "%s: %v\n", u, neighbors)
	}

	return nil
}
