package glod

import (
	"sort"

	"github.com/katalvlaran/glod/core"
)

// membershipCounts returns, for every vertex in the graph, the number
// of communities in the cover it belongs to. Vertices absent from
// every community map to 0 implicitly (not present in the returned map).
func membershipCounts(cover []map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	for _, c := range cover {
		for v := range c {
			counts[v]++
		}
	}

	return counts
}

// shenEQ computes Shen's extended modularity EQ over the whole cover:
// for each community C, each internal edge (u,v) with u,v in C
// contributes 1/(O(u)*O(v)) to the actual-edges term and
// deg(u)*deg(v)/(2m) to the expected term, where O(x) is x's
// membership count across the cover; the community's contribution is
// divided by 2m, and EQ sums over all communities.
func shenEQ(g *core.Graph, cover []map[string]struct{}) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0
	}
	counts := membershipCounts(cover)

	total := 0.0
	for _, c := range cover {
		members := sortedKeys(c)
		for _, u := range members {
			neighbors, _ := g.Neighbors(u)
			degU, _ := g.Degree(u)
			for _, v := range neighbors {
				if _, ok := c[v]; !ok || v <= u {
					continue
				}
				degV, _ := g.Degree(v)
				oU := float64(counts[u])
				oV := float64(counts[v])
				actual := 1.0 / (oU * oV)
				expected := float64(degU*degV) / (2 * m)
				total += (actual - expected) / (2 * m)
			}
		}
	}

	return total
}

// lazarMov computes Lázár's M^ov: the average, over every community of
// size >= 2 (K of them; smaller communities contribute 0 and are
// excluded from K), of
//
//	density(C) * (1/|C|) * sum_{u in C} (kIn(u,C)-kOut(u,C)) / (d_u*O_u)
//
// where density(C) = internalEdges(C) / C(|C|,2), d_u is u's degree,
// and O_u is u's membership count across the whole cover.
func lazarMov(g *core.Graph, cover []map[string]struct{}) float64 {
	if len(cover) == 0 {
		return 0
	}
	counts := membershipCounts(cover)

	total := 0.0
	k := 0
	for _, c := range cover {
		size := len(c)
		if size < 2 {
			continue
		}
		k++

		internalEdges, _ := communityDegrees(g, c)
		density := float64(internalEdges) / (float64(size*(size-1)) / 2)

		sum := 0.0
		for _, u := range sortedKeys(c) {
			dU, _ := g.Degree(u)
			if dU == 0 {
				continue
			}
			kIn, kOut := internalExternalDegree(g, u, c)
			oU := counts[u]
			if oU == 0 {
				oU = 1
			}
			sum += float64(kIn-kOut) / float64(dU*oU)
		}

		total += density * (sum / float64(size))
	}
	if k == 0 {
		return 0
	}

	return total / float64(k)
}

// nicosiaQov computes Nicosia's Q_ov using uniform belonging
// coefficients alpha(v,C) = 1/O(v): for each community and each
// internal edge (u,v), counted once, contributes alpha(u,C)*alpha(v,C) *
// (1 - deg(u)*deg(v)/(2m)); the sum over communities is divided by m
// (the same as summing both orientations of every edge and dividing
// by 2m).
func nicosiaQov(g *core.Graph, cover []map[string]struct{}) float64 {
	m := float64(g.EdgeCount())
	if m == 0 {
		return 0
	}
	counts := membershipCounts(cover)

	total := 0.0
	for _, c := range cover {
		members := sortedKeys(c)
		for _, u := range members {
			neighbors, _ := g.Neighbors(u)
			degU, _ := g.Degree(u)
			alphaU := 1.0 / float64(counts[u])
			for _, v := range neighbors {
				if _, ok := c[v]; !ok || v <= u {
					continue
				}
				degV, _ := g.Degree(v)
				alphaV := 1.0 / float64(counts[v])
				total += alphaU * alphaV * (1 - float64(degU*degV)/(2*m))
			}
		}
	}

	return total / m
}

// perCommunityPsi returns, for each community, the Havemann et al.
// normalized node-cut
//
//	Ψ(C) = (sum_{u in C} kIn(u,C)*kOut(u,C)/d_u) / sum_{u in C} kIn(u,C)
//
// 0 when the community is empty or its total internal degree is 0.
// kIn, kOut and d_u are edge counts; edge weights are not read.
func perCommunityPsi(g *core.Graph, cover []map[string]struct{}) []float64 {
	out := make([]float64, len(cover))
	for i, c := range cover {
		if len(c) == 0 {
			out[i] = 0
			continue
		}

		numerator := 0.0
		denominator := 0.0
		for _, u := range sortedKeys(c) {
			kIn, kOut := internalExternalDegree(g, u, c)
			dU, _ := g.Degree(u)
			if dU > 0 {
				numerator += float64(kIn*kOut) / float64(dU)
			}
			denominator += float64(kIn)
		}
		if denominator == 0 {
			out[i] = 0
			continue
		}
		out[i] = numerator / denominator
	}

	return out
}

// perCommunityConductance returns, for each community, the simplified
// conductance phi(C) = kOut / (kIn+kOut); 0 when both are zero.
// kIn and kOut are edge counts; edge weights are not read.
func perCommunityConductance(g *core.Graph, cover []map[string]struct{}) []float64 {
	out := make([]float64, len(cover))
	for i, c := range cover {
		kIn, kOut := communityDegrees(g, c)
		denom := kIn + kOut
		if denom == 0 {
			out[i] = 0
			continue
		}
		out[i] = float64(kOut) / float64(denom)
	}

	return out
}

// internalExternalDegree returns (kIn, kOut) for a single vertex v
// relative to community c: the count of v's neighbors inside vs.
// outside c.
func internalExternalDegree(g *core.Graph, v string, c map[string]struct{}) (int, int) {
	neighbors, _ := g.Neighbors(v)
	kIn, kOut := 0, 0
	for _, n := range neighbors {
		if _, ok := c[n]; ok {
			kIn++
		} else {
			kOut++
		}
	}

	return kIn, kOut
}

// communityDegrees returns (kIn, kOut) for the whole community c:
// kIn counts each internal edge once, kOut counts each cut edge once.
func communityDegrees(g *core.Graph, c map[string]struct{}) (int, int) {
	kIn, kOut := 0, 0
	for v := range c {
		neighbors, _ := g.Neighbors(v)
		for _, n := range neighbors {
			if _, ok := c[n]; ok {
				if n > v {
					kIn++
				}
			} else {
				kOut++
			}
		}
	}

	return kIn, kOut
}

// sortedKeys returns the keys of a vertex set in ascending order, for
// deterministic accumulation order in the modularity sums.
func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
