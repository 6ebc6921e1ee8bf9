package graphio

import "errors"

// Sentinel errors for graph file parsing.
var (
	// ErrMalformedLine is returned when an edge-list line has more
	// than 3 whitespace-separated fields.
	ErrMalformedLine = errors.New("graphio: malformed edge-list line")

	// ErrInvalidWeight is returned when an edge-list line's third
	// field is present but not parseable as a float.
	ErrInvalidWeight = errors.New("graphio: invalid edge weight")
)
