package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/glod/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// undirected graph over n vertices, including each unordered pair
// {i,j}, i<j, independently with probability p. The sampling uses a
// local *rand.Rand seeded by seed, never the global math/rand state,
// so the same (n, p, seed) always yields the same graph.
//
// Complexity: O(n) vertices + O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64, seed uint32) Constructor {
	return func(g *core.Graph) error {
		if n < minRandomSparseVertices {
			return wrapf(methodRandomSparse, fmt.Errorf("n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices))
		}
		if p < probMin || p > probMax {
			return wrapf(methodRandomSparse, fmt.Errorf("p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability))
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = vertexID(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return wrapf(methodRandomSparse, err)
			}
		}

		r := rand.New(rand.NewSource(int64(seed)))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < p {
					if err := g.AddEdge(ids[i], ids[j], 1); err != nil {
						return wrapf(methodRandomSparse, err)
					}
				}
			}
		}

		return nil
	}
}
