package synth

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/glod/core"
)

// Constructor populates a fresh core.Graph with a specific synthetic
// topology. Constructors are returned by the Complete/RandomSparse/
// Path/Cycle functions below and consumed by Build.
type Constructor func(g *core.Graph) error

// Build constructs a new unweighted core.Graph and applies ctor to it.
func Build(ctor Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := ctor(g); err != nil {
		return nil, err
	}

	return g, nil
}

// vertexID renders a deterministic vertex ID for index i, matching
// the ascending-index vertex-creation order every constructor here follows.
func vertexID(i int) string {
	return "v" + strconv.Itoa(i)
}

// wrapf adds the constructor's method name and context to an inner error.
func wrapf(method string, err error) error {
	return fmt.Errorf("synth: %s: %w", method, err)
}
