package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/glod/core"
)

// jsonEdge is the wire shape of a single edge in the JSON graph format.
type jsonEdge struct {
	U      string  `json:"u"`
	V      string  `json:"v"`
	Weight float64 `json:"weight,omitempty"`
}

// jsonGraph is the wire shape accepted by ReadJSON: an optional list
// of isolated vertices plus a list of edges.
type jsonGraph struct {
	Vertices []string   `json:"vertices,omitempty"`
	Edges    []jsonEdge `json:"edges"`
}

// ReadJSON parses an undirected graph from r in the
// {"vertices": [...], "edges": [{"u":..,"v":..,"weight":..}, ...]} shape.
// A zero-valued Weight field is treated as the default weight 1.0.
func ReadJSON(r io.Reader, weighted bool) (*core.Graph, error) {
	var doc jsonGraph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	var opts []core.GraphOption
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for _, v := range doc.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}

	for _, e := range doc.Edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		if err := g.AddEdge(e.U, e.V, w); err != nil {
			return nil, fmt.Errorf("graphio: edge (%s,%s): %w", e.U, e.V, err)
		}
	}

	return g, nil
}
