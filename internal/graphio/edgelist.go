package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/glod/core"
)

// ReadEdgeList parses an undirected edge-list graph from r: one edge
// per non-empty, non-comment ("#"-prefixed) line, formatted as
// "u v" or "u v weight". Vertices appearing only as isolated lines
// ("u") are also accepted and added with no edges. Parallel edges and
// self-loops are rejected by core.Graph and surfaced verbatim.
func ReadEdgeList(r io.Reader, weighted bool) (*core.Graph, error) {
	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
		case 2:
			if err := g.AddEdge(fields[0], fields[1], 1); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, ErrInvalidWeight)
			}
			if err := g.AddEdge(fields[0], fields[1], w); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("graphio: line %d: %w", lineNo, ErrMalformedLine)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan: %w", err)
	}

	return g, nil
}
