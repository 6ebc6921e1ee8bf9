package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/glod/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("second AddVertex should be a no-op, got: %v", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d; want 1", g.NodeCount())
	}
}

func TestAddEdge_Loop(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("a", "a", 1); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("AddEdge(a,a) = %v; want ErrLoopNotAllowed", err)
	}
}

func TestAddEdge_MultiRejected(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEdge("a", "b", 1); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("second AddEdge(a,b) = %v; want ErrMultiEdgeNotAllowed", err)
	}
	// undirected: b->a must also be rejected as a duplicate
	if err := g.AddEdge("b", "a", 1); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("AddEdge(b,a) = %v; want ErrMultiEdgeNotAllowed", err)
	}
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddEdge("a", "b", -1); !errors.Is(err, core.ErrNegativeWeight) {
		t.Errorf("AddEdge weight=-1 = %v; want ErrNegativeWeight", err)
	}
	if err := g.AddEdge("a", "b", 0); !errors.Is(err, core.ErrNegativeWeight) {
		t.Errorf("AddEdge weight=0 = %v; want ErrNegativeWeight", err)
	}
}

func TestAddEdge_UnweightedIgnoresWeight(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("a", "b", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := g.EdgeWeight("a", "b"); w != 1.0 {
		t.Errorf("EdgeWeight() = %v; want 1.0 for unweighted graph", w)
	}
}

func TestAddEdge_WeightedHonored(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if err := g.AddEdge("a", "b", 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := g.EdgeWeight("a", "b"); w != 2.5 {
		t.Errorf("EdgeWeight() = %v; want 2.5", w)
	}
	if w := g.EdgeWeight("b", "a"); w != 2.5 {
		t.Errorf("EdgeWeight() reverse = %v; want 2.5 (undirected mirror)", w)
	}
}

func TestNeighbors_SortedAndVertexNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("missing")
	if !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Neighbors(missing) = %v; want ErrVertexNotFound", err)
	}

	_ = g.AddEdge("b", "a", 1)
	_ = g.AddEdge("b", "c", 1)
	nbrs, err := g.Neighbors("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "c"}
	if len(nbrs) != 2 || nbrs[0] != want[0] || nbrs[1] != want[1] {
		t.Errorf("Neighbors(b) = %v; want %v", nbrs, want)
	}
}

func TestDegree(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("a", "c", 1)
	d, err := g.Degree("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 2 {
		t.Errorf("Degree(a) = %d; want 2", d)
	}
}

func TestTwoHop(t *testing.T) {
	// a-b-c path: 2-hop of a is {c} union neighbors of b = {a,c}
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	th, err := g.TwoHop("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "c"}
	if len(th) != 2 || th[0] != want[0] || th[1] != want[1] {
		t.Errorf("TwoHop(a) = %v; want %v", th, want)
	}
}

func TestNodeAndEdgeCount(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d; want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d; want 2", g.EdgeCount())
	}
}

func TestNodesSorted(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("c")
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	want := []string{"a", "b", "c"}
	got := g.Nodes()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Nodes() = %v; want %v", got, want)
		}
	}
}
