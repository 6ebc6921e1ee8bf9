package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glod/core"
	"github.com/katalvlaran/glod/glod"
	"github.com/katalvlaran/glod/internal/graphio"
)

func runDetect(cmd *cobra.Command, args []string) error {
	g, err := readGraphFile(inputPath, inputFormat, weighted)
	if err != nil {
		return fmt.Errorf("glod: reading %s: %w", inputPath, err)
	}

	opts, err := loadOptions(configPath)
	if err != nil {
		return fmt.Errorf("glod: loading config %s: %w", configPath, err)
	}

	result, err := glod.Run(g, opts...)
	if err != nil {
		return fmt.Errorf("glod: run: %w", err)
	}

	if groundTruth != "" {
		gt, err := readCoverFile(groundTruth)
		if err != nil {
			return fmt.Errorf("glod: reading ground truth %s: %w", groundTruth, err)
		}
		cfg := glod.DefaultConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		nmi, err := glod.CompareToGroundTruth(g, result.Communities, gt, cfg.Seed)
		if err != nil {
			return fmt.Errorf("glod: nmi comparison: %w", err)
		}
		return printJSON(struct {
			Report glod.Report   `json:"report"`
			NMI    glod.NMIResult `json:"nmi"`
		}{Report: result.Report(), NMI: nmi})
	}

	return printJSON(result.Report())
}

// readGraphFile dispatches to the edgelist or json reader by format.
func readGraphFile(path, format string, weighted bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "json":
		return graphio.ReadJSON(f, weighted)
	default:
		return graphio.ReadEdgeList(f, weighted)
	}
}

// readCoverFile reads a ground-truth cover from a JSON file shaped as
// {"communities": [["a","b"], ["c","d","e"]]}.
func readCoverFile(path string) (glod.Cover, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Communities [][]string `json:"communities"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	cover := make(glod.Cover, len(doc.Communities))
	for i, members := range doc.Communities {
		cover[i] = glod.NewCommunity(members)
	}

	return cover, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
