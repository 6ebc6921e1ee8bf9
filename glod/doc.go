// Package glod implements GLOD (Global-Local Overlapping community
// Detection): a three-phase graph-mining engine that takes an undirected
// graph — typically a protein–protein interaction network — and produces
// a cover: a collection of possibly-overlapping vertex subsets called
// communities, together with modularity and ground-truth-comparison
// metrics.
//
// What
//
//   - Seeding (Algorithm 1): pick dense centers from an "unlabeled" pool
//     and grow a rough seed around each by common-neighbor similarity.
//   - Expansion (Algorithm 2): grow each seed with OR-logic admission —
//     a candidate is admissible if its fitness gain reaches ε, or (early
//     in the expansion) its node fitness ω or influence F exceeds ν;
//     the admissible candidate with the highest fitness gain (then ω,
//     then F, then smallest id) is added. No separate per-metric
//     argmax is taken. Expansion stops when no candidate is admissible.
//   - Merge (Algorithm 3): repeatedly fold together communities whose
//     improved-Jaccard overlap meets or exceeds a threshold, to a fixed
//     point.
//   - Cover-quality metrics: Shen EQ, Lázár M^ov, Nicosia Q_ov,
//     per-community normalized node-cut Ψ and conductance.
//   - Overlapping NMI suite: NMI_LFK, NMI_max, and rNMI against a
//     ground-truth cover.
//
// Determinism
//
//	Given the same graph, α, τ, and seed, Run returns a bit-identical
//	cover and metrics on every invocation: seed-center and candidate
//	ties are broken by ascending vertex id (candidates after gain, ω
//	and F), seeds with equal scores keep the order in which they were
//	recorded, merges scan communities in ascending index order, and
//	floating-point sums are accumulated in ascending-id vertex order.
//
// Usage
//
//	result, err := glod.Run(g, glod.WithAlpha(0.8), glod.WithTau(0.33), glod.WithSeed(42))
//
// See README.md (none shipped; see SPEC_FULL.md in the repository root)
// for the formulas this package implements.
package glod
