package synth

import (
	"fmt"

	"github.com/katalvlaran/glod/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2

	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n:
// 0-1-2-...-(n-1). Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return wrapf(methodPath, fmt.Errorf("n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices))
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = vertexID(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return wrapf(methodPath, err)
			}
		}

		for i := 1; i < n; i++ {
			if err := g.AddEdge(ids[i-1], ids[i], 1); err != nil {
				return wrapf(methodPath, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n: a Path
// with an additional edge closing (n-1) back to 0. Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return wrapf(methodCycle, fmt.Errorf("n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices))
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = vertexID(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return wrapf(methodCycle, err)
			}
		}

		for i := 0; i < n; i++ {
			if err := g.AddEdge(ids[i], ids[(i+1)%n], 1); err != nil {
				return wrapf(methodCycle, err)
			}
		}

		return nil
	}
}
