package synth

import (
	"fmt"

	"github.com/katalvlaran/glod/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple
// graph K_n: every unordered pair {i,j}, i<j, is connected.
// Complexity: O(n) vertices + O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteNodes {
			return wrapf(methodComplete, fmt.Errorf("n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices))
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = vertexID(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return wrapf(methodComplete, err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(ids[i], ids[j], 1); err != nil {
					return wrapf(methodComplete, err)
				}
			}
		}

		return nil
	}
}
