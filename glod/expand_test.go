package glod

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/glod/core"
)

func TestExpandSeed_GrowsUpToSizeCap(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"w", "x", "y", "z"}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := g.AddEdge(ids[i], ids[j], 1); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	}

	rough := map[string]struct{}{"w": {}, "x": {}}
	community := expandSeed(g, rough, DefaultAlpha)
	wantSize := sizeCapFor(g)
	if len(community) != wantSize {
		t.Errorf("expandSeed grew to %d members; want %d (size cap)", len(community), wantSize)
	}
	for _, v := range []string{"w", "x"} {
		if _, ok := community[v]; !ok {
			t.Errorf("expandSeed dropped original seed member %s", v)
		}
	}
}

func TestExpandSeed_NoBoundaryStopsImmediately(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("solo")
	rough := map[string]struct{}{"solo": {}}
	community := expandSeed(g, rough, DefaultAlpha)
	if len(community) != 1 {
		t.Errorf("expandSeed with no boundary = %d members; want 1", len(community))
	}
}

func TestBoundary_ExcludesMembers(t *testing.T) {
	g := core.NewGraph()
	edges := [][2]string{{"a", "b"}, {"b", "c"}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	community := map[string]struct{}{"a": {}, "b": {}}
	b := boundary(g, community)
	if len(b) != 1 || b[0] != "c" {
		t.Errorf("boundary = %v; want [c]", b)
	}
}

func TestSizeCapFor(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	if cap := sizeCapFor(g); cap != 50 {
		t.Errorf("sizeCapFor(100 nodes) = %d; want 50", cap)
	}
}

func TestSizeCapFor_SmallGraphUsesMinimum(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("a")
	_ = g.AddVertex("b")
	if cap := sizeCapFor(g); cap != minSavedCommunitySize {
		t.Errorf("sizeCapFor(2 nodes) = %d; want %d (minimum floor)", cap, minSavedCommunitySize)
	}
}
