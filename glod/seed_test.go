package glod

import (
	"testing"

	"github.com/katalvlaran/glod/core"
)

func TestGenerateSeeds_TwoTriangles(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "e"}, {"e", "f"}, {"f", "d"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	seeds := generateSeeds(g)
	// One recorded seed per center processed; only the center is
	// dropped from NL each iteration, so every vertex is visited once
	// as a center before NL empties.
	if len(seeds) != 6 {
		t.Fatalf("generateSeeds produced %d seeds; want 6 (one per vertex-as-center)", len(seeds))
	}

	covered := make(map[string]bool)
	for _, s := range seeds {
		for v := range s.vertices {
			covered[v] = true
		}
	}
	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		if !covered[v] {
			t.Errorf("vertex %s not covered by any seed", v)
		}
	}
}

func TestGenerateSeeds_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	seeds := generateSeeds(g)
	if len(seeds) != 0 {
		t.Errorf("generateSeeds(empty) = %d seeds; want 0", len(seeds))
	}
}

func TestGenerateSeeds_SortedByDescendingScore(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"z", "a"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	seeds := generateSeeds(g)
	for i := 1; i < len(seeds); i++ {
		if seeds[i].score > seeds[i-1].score {
			t.Fatalf("seeds not sorted by descending score at index %d: %v > %v", i, seeds[i].score, seeds[i-1].score)
		}
	}
}

func TestPickSeedCenter_MaxDegree(t *testing.T) {
	g := core.NewGraph()
	// a is in a dense triangle (degree 3 after the pendant); z is a
	// pendant with one neighbor.
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"z", "a"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	unlabeled := map[string]struct{}{"a": {}, "b": {}, "c": {}, "z": {}}

	center, ok := pickSeedCenter(g, unlabeled)
	if !ok || center != "a" {
		t.Errorf("pickSeedCenter = (%q, %v); want (\"a\", true)", center, ok)
	}
}

func TestPickSeedCenter_TieBreaksBySmallestID(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{{"x", "y"}, {"y", "z"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// x and z both have degree 1; tie-break picks the smallest id.
	unlabeled := map[string]struct{}{"x": {}, "z": {}}

	center, ok := pickSeedCenter(g, unlabeled)
	if !ok || center != "x" {
		t.Errorf("pickSeedCenter tie-break = (%q, %v); want (\"x\", true)", center, ok)
	}
}

func TestPickSeedCenter_EmptyPool(t *testing.T) {
	g := core.NewGraph()
	if _, ok := pickSeedCenter(g, map[string]struct{}{}); ok {
		t.Error("pickSeedCenter(empty pool) should report ok=false")
	}
}

func TestRoughSeed_GrowsUntilNoCommonNeighbors(t *testing.T) {
	g := buildTriangleWithTail(t)
	// center=c: neighbors are a,b (NC=1 each, via the triangle) and d
	// (NC(c,d)=0, since a and b are d's only potential common
	// neighbors and neither is adjacent to d). a and b get admitted;
	// d never does.
	vi := roughSeed(g, "c")
	for _, want := range []string{"a", "b", "c"} {
		if _, ok := vi[want]; !ok {
			t.Errorf("roughSeed(c) missing %s", want)
		}
	}
	if _, ok := vi["d"]; ok {
		t.Error("roughSeed(c) should not admit d (NC(c,d)=0)")
	}
}

func TestRoughSeed_NoNeighborsYieldsSingleton(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("solo")
	vi := roughSeed(g, "solo")
	if len(vi) != 1 {
		t.Errorf("roughSeed(isolated vertex) = %v; want singleton", vi)
	}
}

func TestSeedScore_DenserNeighborhoodScoresHigher(t *testing.T) {
	g := core.NewGraph()
	// a's triangle is denser than z's pendant edge.
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"z", "a"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	dense := map[string]struct{}{"a": {}, "b": {}, "c": {}}
	sparse := map[string]struct{}{"z": {}}

	scoreDense := seedScore(g, dense)
	scoreSparse := seedScore(g, sparse)
	if scoreDense <= scoreSparse {
		t.Errorf("seedScore(triangle)=%v should exceed seedScore(singleton)=%v", scoreDense, scoreSparse)
	}
}

func TestCanonicalKey_OrderIndependent(t *testing.T) {
	a := map[string]struct{}{"b": {}, "a": {}, "c": {}}
	b := map[string]struct{}{"c": {}, "b": {}, "a": {}}
	if canonicalKey(a) != canonicalKey(b) {
		t.Errorf("canonicalKey should be order-independent: %q != %q", canonicalKey(a), canonicalKey(b))
	}

	d := map[string]struct{}{"a": {}, "b": {}}
	if canonicalKey(a) == canonicalKey(d) {
		t.Error("canonicalKey should differ for different sets")
	}
}
