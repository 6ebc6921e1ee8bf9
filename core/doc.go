// Package core defines the Graph, Vertex, and Edge types shared by the
// rest of this module, and provides thread-safe primitives for building
// and querying a simple undirected graph.
//
// core.Graph is deliberately narrower than a general-purpose graph
// library: it models exactly the data model GLOD needs — loop-free, at
// most one edge between any pair of vertices, optionally weighted,
// always undirected. Callers may build a Graph concurrently from
// multiple goroutines (AddVertex/AddEdge take a write lock); all
// read-only query methods used by GLOD (Neighbors, Degree, HasEdge,
// EdgeWeight, Nodes, TwoHop) take only a read lock and never mutate.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop attempted (the graph is loop-free).
//	ErrMultiEdgeNotAllowed - parallel edge attempted (the graph is simple).
//	ErrNegativeWeight      - a non-positive edge weight was supplied.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is loop-free.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted; the graph is simple.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeWeight indicates a non-positive edge weight was supplied.
	ErrNegativeWeight = errors.New("core: edge weight must be positive")
)
