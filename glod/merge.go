package glod

// mergeCommunities runs Algorithm 3: repeatedly scans all unordered
// pairs of communities and folds together any pair whose improved-
// Jaccard overlap meets or exceeds tau, to a fixed point (a full pass
// with zero merges). Within a single pass, pairs are scanned in
// ascending (i,j) index order and a merged community is removed from
// further consideration that pass, matching the source's single-pass-
// then-restart convention.
func mergeCommunities(communities []map[string]struct{}, tau float64) []map[string]struct{} {
	current := communities

	for {
		merged, changed := mergePass(current, tau)
		current = merged
		if !changed {
			break
		}
	}

	return current
}

// mergePass performs one left-to-right pass over current: each
// community not yet absorbed in this pass folds in every later one
// whose overlap with the growing union meets tau. It reports whether
// any merge occurred.
func mergePass(current []map[string]struct{}, tau float64) ([]map[string]struct{}, bool) {
	consumed := make([]bool, len(current))
	var out []map[string]struct{}
	changed := false

	for i := 0; i < len(current); i++ {
		if consumed[i] {
			continue
		}
		merged := current[i]

		for j := i + 1; j < len(current); j++ {
			if consumed[j] {
				continue
			}
			if improvedJaccard(merged, current[j]) >= tau {
				merged = union(merged, current[j])
				consumed[j] = true
				changed = true
			}
		}

		out = append(out, merged)
	}

	return out, changed
}

// improvedJaccard computes |A∩B| / |A∪B|, the simplified improved-
// Jaccard overlap used to decide mergeability.
func improvedJaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}

	inter := 0
	for v := range smaller {
		if _, ok := larger[v]; ok {
			inter++
		}
	}

	unionSize := len(a) + len(b) - inter

	return float64(inter) / float64(unionSize)
}

// union returns a new set containing every member of a and b.
func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for v := range a {
		out[v] = struct{}{}
	}
	for v := range b {
		out[v] = struct{}{}
	}

	return out
}
