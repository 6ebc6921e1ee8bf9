package glod

import (
	"math"

	"github.com/katalvlaran/glod/core"
)

// commonNeighborCount returns NC(u,v) = |N(u) ∩ N(v)|.
// Complexity: O(deg(u) + deg(v)).
func commonNeighborCount(g *core.Graph, u, v string) int {
	nu, _ := g.Neighbors(u)
	nv, _ := g.Neighbors(v)
	nvSet := make(map[string]struct{}, len(nv))
	for _, x := range nv {
		nvSet[x] = struct{}{}
	}
	count := 0
	for _, x := range nu {
		if _, ok := nvSet[x]; ok {
			count++
		}
	}

	return count
}

// nodeFitness computes ω(v,C) — the hybrid node-fitness kernel of the
// source paper's Equation 4.
//
// For each w in NCi = N(v) ∩ C, let
//
//	s1(v,w) = (|N(v)∩N(w)|+1) / (|N(w)|+1)
//	s2(v,w) = (|N2(v)∩N2(w)|+1) / max(|N2(w)|,1)
//
// ω(v,C) = max_w [s1 + 0.1*s2] / degree(v), or 0 if NCi is empty or
// degree(v)==0. The 2-hop sets are recomputed per call, not cached,
// matching the source prototype.
func nodeFitness(g *core.Graph, v string, community map[string]struct{}) float64 {
	neighborsV, _ := g.Neighbors(v)
	degreeV := len(neighborsV)
	if degreeV == 0 {
		return 0.0
	}

	nSetV := make(map[string]struct{}, len(neighborsV))
	for _, x := range neighborsV {
		nSetV[x] = struct{}{}
	}

	var nci []string
	for _, x := range neighborsV {
		if _, ok := community[x]; ok {
			nci = append(nci, x)
		}
	}
	if len(nci) == 0 {
		return 0.0
	}

	n2v, _ := g.TwoHop(v)
	n2vSet := make(map[string]struct{}, len(n2v))
	for _, x := range n2v {
		n2vSet[x] = struct{}{}
	}

	maxScore := 0.0
	for _, w := range nci {
		neighborsW, _ := g.Neighbors(w)
		nSetW := make(map[string]struct{}, len(neighborsW))
		for _, x := range neighborsW {
			nSetW[x] = struct{}{}
		}
		inter1 := 0
		for x := range nSetV {
			if _, ok := nSetW[x]; ok {
				inter1++
			}
		}
		denom1 := float64(len(neighborsW) + 1)
		s1 := float64(inter1+1) / denom1

		n2w, _ := g.TwoHop(w)
		inter2 := 0
		n2wLen := len(n2w)
		for _, x := range n2w {
			if _, ok := n2vSet[x]; ok {
				inter2++
			}
		}
		denom2 := float64(n2wLen)
		if denom2 == 0 {
			denom2 = 1
		}
		s2 := float64(inter2+1) / denom2

		score := s1 + 0.1*s2
		if score > maxScore {
			maxScore = score
		}
	}

	return maxScore / float64(degreeV)
}

// influence computes F(v,S) = |N(v) ∩ S| / |S|, or 0 when S is empty.
func influence(g *core.Graph, v string, seed map[string]struct{}) float64 {
	if len(seed) == 0 {
		return 0.0
	}
	neighborsV, _ := g.Neighbors(v)
	count := 0
	for _, x := range neighborsV {
		if _, ok := seed[x]; ok {
			count++
		}
	}

	return float64(count) / float64(len(seed))
}

// communityFitness computes f(C) = k_in / (k_in + k_out)^alpha, counting
// each internal edge twice (once per endpoint) and each cut edge once
// per the community-internal endpoint — the source's convention, which
// this implementation preserves exactly.
func communityFitness(g *core.Graph, community map[string]struct{}, alpha float64) float64 {
	kIn, kOut := 0, 0
	for u := range community {
		neighborsU, _ := g.Neighbors(u)
		for _, v := range neighborsU {
			if _, ok := community[v]; ok {
				kIn++
			} else {
				kOut++
			}
		}
	}
	if kIn == 0 {
		return 0.0
	}
	denom := math.Pow(float64(kIn+kOut), alpha)
	if denom == 0 {
		return 0.0
	}

	return float64(kIn) / denom
}
