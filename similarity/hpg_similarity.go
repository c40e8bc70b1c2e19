// File: hpg_similarity.go
// Role: the weighted multi-level HPG similarity lift (spec.md §4.5),
// emphasizing deeper (more abstract) levels by weighting each level's
// metric value by its level index.
package similarity

import (
	"github.com/katalvlaran/ngramgraph/digraph"
	"gonum.org/v1/gonum/floats"
)

// Metric is the (value, components) signature shared by SS/VS/NVS/ACS/SCS,
// used as the per-level comparator for HPGSimilarity.
type Metric func(g1, g2 *digraph.Graph) (float64, Components)

// HPGSimilarity lifts a per-level Metric across two HPG level stacks,
// weighting each paired level by its 1-based position in the stack
// (level index 0, the base graph, is included and weighted 1; spec.md
// §4.5's "paired levels ℓ=1..min(k1,k2)" counts position, not the
// caller's own level-0/level-1/... numbering):
//
//   - both empty (no levels): 1
//   - exactly one empty: 0
//   - otherwise, for each paired level ℓ: if both sub-graphs are
//     edgeless, skip (neither numerator nor denominator accumulates); else
//     compute s_ℓ = metric(G1^ℓ, G2^ℓ), weight by ℓ, and accumulate.
//   - result = Σ ℓ·s_ℓ / Σ ℓ, or 0 if the denominator is zero.
//
// The weighted reduction is delegated to gonum/floats.Dot, since the
// numerator is exactly the dot product of level weights and per-level
// scores.
func HPGSimilarity(levels1, levels2 []*digraph.Graph, metric Metric) float64 {
	k1, k2 := len(levels1), len(levels2)
	if k1 == 0 && k2 == 0 {
		return 1
	}
	if k1 == 0 || k2 == 0 {
		return 0
	}

	minK := k1
	if k2 < minK {
		minK = k2
	}

	weights := make([]float64, 0, minK)
	scores := make([]float64, 0, minK)
	denom := 0.0
	for i := 0; i < minK; i++ {
		level := i + 1
		g1, g2 := levels1[i], levels2[i]
		if g1.EdgeCount() == 0 && g2.EdgeCount() == 0 {
			continue // skip empty level pairs in both numerator and denominator
		}
		s, _ := metric(g1, g2)
		weights = append(weights, float64(level))
		scores = append(scores, s)
		denom += float64(level)
	}
	if denom == 0 {
		return 0
	}

	return floats.Dot(weights, scores) / denom
}
