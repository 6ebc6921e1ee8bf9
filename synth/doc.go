// Package synth generates synthetic graphs for exercising and
// benchmarking the glod package: complete graphs, Erdős–Rényi-style
// random sparse graphs, paths, and cycles, each built deterministically
// from a fixed vertex count (and, for random graphs, a fixed seed).
//
// Every Constructor adds vertices in ascending index order and emits
// edges in a stable, documented order, so two calls with identical
// parameters produce identical graphs.
//
// Usage
//
//	g, err := synth.Build(synth.Complete(5))
//	g, err := synth.Build(synth.RandomSparse(50, 0.1, 42))
package synth
