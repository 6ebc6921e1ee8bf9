package glod

import "math/rand"

// rngFromSeed returns a local, independent random source derived from
// seed. Callers must never reach for the global math/rand functions:
// every random draw in this package flows through an explicit
// *rand.Rand so a fixed seed reproduces bit-identical rNMI
// shuffles regardless of what else in the process touches math/rand.
func rngFromSeed(seed uint32) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// shuffledCopy returns a new slice containing the same elements as in,
// permuted by r via a Fisher-Yates shuffle. in is left untouched.
func shuffledCopy(r *rand.Rand, in []string) []string {
	out := append([]string(nil), in...)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// sampleWithoutReplacement draws k distinct elements from in (which
// must already be deduplicated), preserving none of the original
// order; it mirrors random.sample's semantics for the rNMI shuffle
// procedure. If k >= len(in), a shuffled copy of the full slice is
// returned.
func sampleWithoutReplacement(r *rand.Rand, in []string, k int) []string {
	if k >= len(in) {
		return shuffledCopy(r, in)
	}

	shuffled := shuffledCopy(r, in)

	return shuffled[:k]
}
