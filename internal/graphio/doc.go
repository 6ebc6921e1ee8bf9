// Package graphio reads graphs from disk for the glod CLI: a plain
// whitespace-delimited edge-list format, and a JSON form mirroring
// the adjacency shape produced by external tooling.
package graphio
