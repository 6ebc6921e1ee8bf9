package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// --- Global command flags ---
var (
	inputPath    string
	inputFormat  string
	weighted     bool
	configPath   string
	groundTruth  string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "glod",
		Short: "GLOD: Global-Local Overlapping community Detection",
		Long: `glod detects overlapping communities in an undirected graph
using a three-phase seed/expand/merge pipeline, and reports
cover-quality and ground-truth-comparison metrics.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Detect communities in a graph file and print the JSON report",
		RunE:  runDetect,
	}

	synthCmd = &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic graph and print its counts and adjacency lists",
		RunE:  runSynth,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config overriding alpha/tau/seed")

	runCmd.Flags().StringVarP(&inputPath, "graph", "i", "", "path to the graph file (required)")
	runCmd.Flags().StringVarP(&inputFormat, "format", "f", "edgelist", "input format: edgelist or json")
	runCmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "honor edge weights in the input file")
	runCmd.Flags().StringVarP(&groundTruth, "ground-truth", "g", "", "optional ground-truth cover file (json) for NMI comparison")
	_ = runCmd.MarkFlagRequired("graph")

	rootCmd.AddCommand(runCmd, synthCmd)
}

func fatalIfErr(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}
