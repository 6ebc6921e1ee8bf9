package glod

import (
	"sort"

	"github.com/katalvlaran/glod/core"
)

// expandSeed runs Algorithm 2: grows a rough seed into a community by
// repeatedly admitting the single best boundary candidate under
// OR-logic — admitted if it raises community fitness f(C) by at least
// minFitnessGain, or (within the first exceptionWindow admissions) its node fitness ω
// or influence F exceeds exceptionThreshold. Stops when no candidate
// is admissible, or the community reaches its size cap.
//
// Ties among equally-good candidates are broken by ascending vertex id.
func expandSeed(g *core.Graph, rough map[string]struct{}, alpha float64) map[string]struct{} {
	community := make(map[string]struct{}, len(rough))
	for v := range rough {
		community[v] = struct{}{}
	}

	sizeCap := sizeCapFor(g)
	admissions := 0

	for len(community) < sizeCap {
		candidates := boundary(g, community)
		if len(candidates) == 0 {
			break
		}

		currentFitness := communityFitness(g, community, alpha)

		var best *expansionCandidate

		for _, c := range candidates {
			withC := make(map[string]struct{}, len(community)+1)
			for v := range community {
				withC[v] = struct{}{}
			}
			withC[c] = struct{}{}

			gain := communityFitness(g, withC, alpha) - currentFitness
			omega := nodeFitness(g, c, community)
			infl := influence(g, c, community)

			admitted := gain >= minFitnessGain
			if !admitted && admissions < exceptionWindow {
				if omega > exceptionThreshold || infl > exceptionThreshold {
					admitted = true
				}
			}
			if !admitted {
				continue
			}

			cand := expansionCandidate{id: c, gain: gain, omega: omega, infl: infl}
			if best == nil || cand.better(*best) {
				best = &cand
			}
		}

		if best == nil {
			break
		}

		community[best.id] = struct{}{}
		admissions++
	}

	return community
}

// expansionCandidate scores a single boundary vertex during an
// expansion round.
type expansionCandidate struct {
	id    string
	gain  float64
	omega float64
	infl  float64
}

// better reports whether c ranks above other: higher fitness gain
// wins; ties broken by higher ω, then higher F, then ascending id.
func (c expansionCandidate) better(other expansionCandidate) bool {
	if c.gain != other.gain {
		return c.gain > other.gain
	}
	if c.omega != other.omega {
		return c.omega > other.omega
	}
	if c.infl != other.infl {
		return c.infl > other.infl
	}

	return c.id < other.id
}

// boundary returns every vertex adjacent to the community but not a
// member of it, sorted ascending by id.
func boundary(g *core.Graph, community map[string]struct{}) []string {
	seen := make(map[string]struct{})
	for v := range community {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, n := range neighbors {
			if _, in := community[n]; in {
				continue
			}
			seen[n] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// sizeCapFor bounds a single community's size at max(minSavedCommunitySize,
// floor(maxCommunitySizeRatio * |V|)).
func sizeCapFor(g *core.Graph) int {
	maxSize := int(maxCommunitySizeRatio * float64(g.NodeCount()))
	if maxSize < minSavedCommunitySize {
		maxSize = minSavedCommunitySize
	}

	return maxSize
}
