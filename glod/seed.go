package glod

import (
	"sort"
	"strings"

	"github.com/katalvlaran/glod/core"
)

// recordedSeed pairs a rough seed's vertex set with the score used to
// order expansion. Score ties keep the order in which seeds were
// recorded.
type recordedSeed struct {
	vertices map[string]struct{}
	score    float64
}

// generateSeeds runs Algorithm 1: repeatedly pick the highest-degree
// unlabeled vertex as a center, grow a rough seed by greedily adding
// the center's neighbors in descending common-neighbor-count order,
// record its score, and remove only the center from the unlabeled
// pool. Stops when the pool is empty or either safety cap
// (maxSeedCandidates centers, maxSeedIterations total loop iterations)
// is reached. The returned seeds are sorted by descending score, ties
// broken by the order in which they were recorded.
func generateSeeds(g *core.Graph) []recordedSeed {
	nodes := g.Nodes()
	unlabeled := make(map[string]struct{}, len(nodes))
	for _, v := range nodes {
		unlabeled[v] = struct{}{}
	}

	var seeds []recordedSeed
	iterations := 0
	for len(unlabeled) > 0 && len(seeds) < maxSeedCandidates && iterations < maxSeedIterations {
		iterations++

		center, ok := pickSeedCenter(g, unlabeled)
		if !ok {
			break
		}

		vi := roughSeed(g, center)
		seeds = append(seeds, recordedSeed{vertices: vi, score: seedScore(g, vi)})

		delete(unlabeled, center)
	}

	sort.SliceStable(seeds, func(i, j int) bool {
		return seeds[i].score > seeds[j].score
	})

	return seeds
}

// pickSeedCenter returns the unlabeled vertex with maximal degree,
// ties broken by smallest id.
func pickSeedCenter(g *core.Graph, unlabeled map[string]struct{}) (string, bool) {
	ids := make([]string, 0, len(unlabeled))
	for v := range unlabeled {
		ids = append(ids, v)
	}
	if len(ids) == 0 {
		return "", false
	}
	sort.Strings(ids)

	best := ids[0]
	bestDegree, _ := g.Degree(best)
	for _, id := range ids[1:] {
		d, _ := g.Degree(id)
		if d > bestDegree {
			best = id
			bestDegree = d
		}
	}

	return best, true
}

// roughSeed builds the initial rough seed around center: starting from
// {center}, repeatedly admits the neighbor x in N(center)\Vi with the
// maximal common-neighbor count NC(center,x), ties broken by smallest
// id, stopping as soon as the best remaining NC is 0.
func roughSeed(g *core.Graph, center string) map[string]struct{} {
	vi := map[string]struct{}{center: {}}

	neighbors, err := g.Neighbors(center)
	if err != nil {
		return vi
	}
	candidates := append([]string(nil), neighbors...)
	sort.Strings(candidates)

	for {
		bestID := ""
		bestNC := 0
		for _, x := range candidates {
			if _, in := vi[x]; in {
				continue
			}
			nc := commonNeighborCount(g, center, x)
			if nc > bestNC {
				bestNC = nc
				bestID = x
			}
		}
		if bestID == "" {
			break
		}
		vi[bestID] = struct{}{}
	}

	return vi
}

// seedScore computes Σ_{u∈Vi} deg(u) + |Vi| + (count of internal edges
// in Vi), the density-biased score used to order seeds before
// expansion.
func seedScore(g *core.Graph, vi map[string]struct{}) float64 {
	members := sortedKeys(vi)

	degreeSum := 0
	for _, u := range members {
		d, _ := g.Degree(u)
		degreeSum += d
	}

	internalEdges := 0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if g.HasEdge(members[i], members[j]) {
				internalEdges++
			}
		}
	}

	return float64(degreeSum) + float64(len(vi)) + float64(internalEdges)
}

// canonicalKey returns a stable string representation of a vertex set,
// used by the orchestrator to collapse duplicate seeds before
// expansion.
func canonicalKey(set map[string]struct{}) string {
	return strings.Join(sortedKeys(set), "\x00")
}
