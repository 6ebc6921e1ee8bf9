package glod

import (
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/glod/core"
)

// Run executes the full GLOD pipeline against g: seeding, OR-logic
// expansion, improved-Jaccard merge, and cover-quality metrics.
// Returns ErrGraphNil if g is nil, or whichever Option error was
// recorded (ErrInvalidAlpha, ErrInvalidTau) if the supplied options
// were out of range.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	logger := log.With().Str("component", "glod").Logger()
	logger.Debug().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Float64("alpha", cfg.Alpha).
		Float64("tau", cfg.Tau).
		Msg("starting pipeline")

	seeds := generateSeeds(g)
	logger.Debug().Int("seeds", len(seeds)).Msg("seeding complete")

	seen := make(map[string]struct{}, len(seeds))
	expanded := make([]map[string]struct{}, 0, len(seeds))
	for _, s := range seeds {
		key := canonicalKey(s.vertices)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		e := expandSeed(g, s.vertices, cfg.Alpha)
		if len(e) >= minSavedCommunitySize {
			expanded = append(expanded, e)
		}
	}
	logger.Debug().Int("expanded", len(expanded)).Msg("expansion complete")

	merged := mergeCommunities(expanded, cfg.Tau)
	logger.Debug().Int("merged", len(merged)).Msg("merge complete")

	cover := make(Cover, len(merged))
	for i, m := range merged {
		cover[i] = newCommunity(m)
	}

	result := &Result{
		Communities:             cover,
		ShenEQ:                  shenEQ(g, merged),
		LazarMov:                lazarMov(g, merged),
		NicosiaQov:              nicosiaQov(g, merged),
		PerCommunityPsi:         perCommunityPsi(g, merged),
		PerCommunityConductance: perCommunityConductance(g, merged),
	}

	logger.Info().
		Int("communities", len(result.Communities)).
		Float64("shenEQ", result.ShenEQ).
		Msg("pipeline complete")

	return result, nil
}

// CompareToGroundTruth computes the overlapping-NMI suite (NMI_LFK,
// NMI_max, rNMI) between a detected cover and a ground-truth cover,
// over g's full vertex set. Returns ErrEmptyCover if either cover has
// zero communities.
func CompareToGroundTruth(g *core.Graph, detected, groundTruth []*Community, seed uint32) (NMIResult, error) {
	if len(detected) == 0 || len(groundTruth) == 0 {
		return NMIResult{}, ErrEmptyCover
	}

	a := coverToSets(detected)
	b := coverToSets(groundTruth)
	universe := g.Nodes()
	n := len(universe)

	return NMIResult{
		NMILFK: nmiLFK(a, b, n),
		NMIMax: nmiMax(a, b, n),
		RNMI:   rNMI(a, b, universe, seed),
	}, nil
}

// coverToSets converts a community slice into plain vertex sets for
// the metric and NMI helpers, which operate on map[string]struct{}.
func coverToSets(cover []*Community) []map[string]struct{} {
	out := make([]map[string]struct{}, len(cover))
	for i, c := range cover {
		out[i] = c.set()
	}

	return out
}
