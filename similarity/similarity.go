// Package similarity implements the graph-similarity measures of
// spec.md §4.5: Size Similarity (SS), Value Similarity (VS), Normalized
// Value Similarity (NVS), and their weighted HPG lift — plus the two
// containment similarities (ACS, SCS) that original_source's
// NGramGraphSimilarity.py defines alongside VS/NVS but spec.md's
// distillation dropped (see SPEC_FULL.md's DOMAIN STACK supplement).
//
// Every metric returns a real in [0,1] (or 0 on degeneracy) and never
// raises on ordinary data, including empty graphs (spec.md §7).
package similarity

import "github.com/katalvlaran/ngramgraph/digraph"

// Components is the shared-subexpression dictionary form every metric
// also exposes, grounded on BaseSimilarityOperator.similarity's
// new_components={...} pattern in original_source.
type Components map[string]float64

// SS (Size Similarity) returns min(a,b)/max(a,b) where a, b are the
// NumberOfEdges() of the two graphs — which, per the legacy accessor
// pitfall preserved in digraph.Graph, is actually the NODE count
// (spec.md §4.1 Open Question 1). Returns 0 if both are 0.
func SS(g1, g2 *digraph.Graph) (float64, Components) {
	a, b := float64(g1.NumberOfEdges()), float64(g2.NumberOfEdges())
	maxAB := max(a, b)
	if maxAB == 0 {
		return 0, Components{"SS": 0}
	}
	v := min(a, b) / maxAB

	return v, Components{"SS": v}
}

// VS (Value Similarity) returns 1 if both graphs are edgeless; otherwise
// sums min(w1,w2)/max(w1,w2) over edges common to both graphs and
// divides by max(|E(G1)|,|E(G2)|).
func VS(g1, g2 *digraph.Graph) (float64, Components) {
	e1, e2 := g1.EdgeCount(), g2.EdgeCount()
	if e1 == 0 && e2 == 0 {
		return 1, Components{"VS": 1}
	}

	small, big := g1, g2
	if e1 > e2 {
		small, big = g2, g1
	}

	sum := 0.0
	for _, e := range small.EdgesWithData() {
		if wBig, ok := big.GetEdgeWeight(e.From, e.To); ok {
			sum += min(e.Weight, wBig) / max(e.Weight, wBig)
		}
	}
	denom := max(float64(e1), float64(e2))
	v := sum / denom

	return v, Components{"VS": v}
}

// NVS (Normalized Value Similarity) is VS/SS, or 0 if SS is 0
// (spec.md §4.5, Open Question 2: this makes NVS 0 on two empty graphs
// even though VS alone would say 1 — the asymmetry is intentional and
// preserved from the legacy implementation).
func NVS(g1, g2 *digraph.Graph) (float64, Components) {
	ss, _ := SS(g1, g2)
	if ss == 0 {
		return 0, Components{"NVS": 0}
	}
	vs, _ := VS(g1, g2)
	v := vs / ss

	return v, Components{"NVS": v, "VS": vs, "SS": ss}
}

// ACS (Asymmetric Containment Similarity) is the fraction of
// reference's edges also present in evaluated — |E(ref) ∩ E(eval)| /
// |E(ref)|, grounded on AsymmetricContainmentSimilarity in
// original_source's NGramGraphSimilarity.py. Returns 0 if reference is
// edgeless.
func ACS(reference, evaluated *digraph.Graph) (float64, Components) {
	refEdges := reference.EdgesWithData()
	if len(refEdges) == 0 {
		return 0, Components{"ACS": 0}
	}
	common := 0
	for _, e := range refEdges {
		if evaluated.HasEdge(e.From, e.To) {
			common++
		}
	}
	v := float64(common) / float64(len(refEdges))

	return v, Components{"ACS": v}
}

// SCS (Symmetric Containment Similarity) is |E(ref) ∩ E(eval)| divided
// by the size of the larger edge set, grounded on
// SymmetricContainmentSimilarity in original_source.
func SCS(reference, evaluated *digraph.Graph) (float64, Components) {
	refEdges := reference.EdgesWithData()
	common := 0
	for _, e := range refEdges {
		if evaluated.HasEdge(e.From, e.To) {
			common++
		}
	}
	denom := max(float64(len(refEdges)), float64(evaluated.EdgeCount()))
	if denom == 0 {
		return 0, Components{"SCS": 0}
	}
	v := float64(common) / denom

	return v, Components{"SCS": v}
}
