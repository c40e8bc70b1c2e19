// Package ops implements the binary operators over digraph.Graphs:
// Union, Intersect, InverseIntersection (AllNotIn), Delta, and the
// left-to-right n-ary reduction LtoRNary (spec.md §4.4).
//
// Every operator takes an explicit deepCopy flag: when true it builds and
// returns a fresh graph; when false it mutates ga in place and returns
// it. This is the spec.md §9 design note realized literally — no
// language-level reference-sharing surprises.
package ops

import "github.com/katalvlaran/ngramgraph/digraph"

// Op declares the commutativity/distributivity hints used by LtoRNary.
// These are declarative metadata only; Apply is the actual operator
// function.
type Op struct {
	Commutative    bool
	Distributional bool
	Apply          func(ga, gb *digraph.Graph, deepCopy bool) *digraph.Graph
}

// UnionOp returns an Op wrapping Union(lf) with the given learning factor.
func UnionOp(lf float64) Op {
	return Op{
		Commutative:    false,
		Distributional: true,
		Apply:          func(ga, gb *digraph.Graph, deepCopy bool) *digraph.Graph { return Union(ga, gb, lf, deepCopy) },
	}
}

// IntersectOp wraps Intersect as an Op.
func IntersectOp() Op {
	return Op{Commutative: true, Distributional: true, Apply: Intersect}
}

// InverseIntersectionOp wraps InverseIntersection as an Op.
func InverseIntersectionOp() Op {
	return Op{Commutative: false, Distributional: false, Apply: InverseIntersection}
}

// DeltaOp wraps Delta as an Op.
func DeltaOp() Op {
	return Op{Commutative: true, Distributional: false, Apply: Delta}
}

// Union merges gb into ga (spec.md §4.4): edges present in both get
// weight lf*w_b + (1-lf)*w_a; edges only in gb are added at w_b
// unscaled; edges only in ga are preserved unchanged. lf is the learning
// factor, expected in [0,1] (not enforced — callers pass values derived
// elsewhere, e.g. the collector's 1/(docs_count+1)).
func Union(ga, gb *digraph.Graph, lf float64, deepCopy bool) *digraph.Graph {
	dst := target(ga, deepCopy)
	for _, e := range gb.EdgesWithData() {
		if wa, ok := dst.GetEdgeWeight(e.From, e.To); ok {
			// wa + lf*(w_b-w_a) equals lf*w_b + (1-lf)*w_a, and is exactly
			// w_a when the two weights are equal (Union(G,G) == G).
			dst.AddOrUpdateEdge(e.From, e.To, wa+lf*(e.Weight-wa))
		} else {
			dst.AddOrUpdateEdge(e.From, e.To, e.Weight)
		}
	}

	return dst
}

// Intersect keeps only edges present in both ga and gb, with weight equal
// to the arithmetic mean of the two weights. deepCopy is honored for
// symmetry with the other operators even though the result is always a
// fresh edge set built from scratch into dst.
func Intersect(ga, gb *digraph.Graph, deepCopy bool) *digraph.Graph {
	fresh := digraph.New()
	for _, e := range ga.EdgesWithData() {
		if wb, ok := gb.GetEdgeWeight(e.From, e.To); ok {
			fresh.AddOrUpdateEdge(e.From, e.To, (e.Weight+wb)/2.0)
		}
	}
	if deepCopy {
		return fresh
	}
	ga.ReplaceFrom(fresh)

	return ga
}

// InverseIntersection (AllNotIn) returns the edges of ga not present in
// gb, with ga's weights.
func InverseIntersection(ga, gb *digraph.Graph, deepCopy bool) *digraph.Graph {
	dst := digraph.New()
	for _, e := range ga.EdgesWithData() {
		if !gb.HasEdge(e.From, e.To) {
			dst.AddOrUpdateEdge(e.From, e.To, e.Weight)
		}
	}
	if deepCopy {
		return dst
	}
	ga.ReplaceFrom(dst)

	return ga
}

// Delta (symmetric difference) returns edges present in exactly one of
// ga, gb, with their respective weights.
func Delta(ga, gb *digraph.Graph, deepCopy bool) *digraph.Graph {
	dst := digraph.New()
	for _, e := range ga.EdgesWithData() {
		if !gb.HasEdge(e.From, e.To) {
			dst.AddOrUpdateEdge(e.From, e.To, e.Weight)
		}
	}
	for _, e := range gb.EdgesWithData() {
		if !ga.HasEdge(e.From, e.To) {
			dst.AddOrUpdateEdge(e.From, e.To, e.Weight)
		}
	}
	if deepCopy {
		return dst
	}
	ga.ReplaceFrom(dst)

	return ga
}

// LtoRNary left-folds op over a non-empty list of graphs. If
// op.Commutative is false, order is significant (it always is, here:
// the fold is always performed left-to-right regardless of the hint —
// Commutative exists for callers who want to reorder graphs before
// folding and need to know it's safe to do so).
func LtoRNary(op Op, graphs []*digraph.Graph, deepCopy bool) *digraph.Graph {
	if len(graphs) == 0 {
		return digraph.New()
	}
	acc := graphs[0]
	if deepCopy {
		acc = acc.Clone()
	}
	for _, g := range graphs[1:] {
		acc = op.Apply(acc, g, deepCopy)
	}

	return acc
}

// target returns ga itself when deepCopy is false (mutate-in-place), or a
// clone when deepCopy is true.
func target(ga *digraph.Graph, deepCopy bool) *digraph.Graph {
	if deepCopy {
		return ga.Clone()
	}

	return ga
}
