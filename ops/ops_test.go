package ops_test

import (
	"testing"

	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/ops"
	"github.com/katalvlaran/ngramgraph/symbol"
	"github.com/stretchr/testify/require"
)

func sym(s string) symbol.Symbol { return symbol.Symbol(s) }

func build(edges ...[3]interface{}) *digraph.Graph {
	g := digraph.New()
	for _, e := range edges {
		g.AddOrUpdateEdge(sym(e[0].(string)), sym(e[1].(string)), e[2].(float64))
	}

	return g
}

// TestUnionIdempotence verifies invariant 7: Union(lf)(G,G) equals G for
// any learning factor.
func TestUnionIdempotence(t *testing.T) {
	g := build([3]interface{}{"a", "b", 2.0}, [3]interface{}{"b", "c", 3.0})
	for _, lf := range []float64{0, 0.3, 0.5, 1} {
		out := ops.Union(g.Clone(), g, lf, true)
		require.True(t, out.Equal(g))
	}
}

// TestUnionWeightedMerge verifies the weight-combination rule on a shared edge.
func TestUnionWeightedMerge(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 10.0})
	gb := build([3]interface{}{"a", "b", 20.0})
	out := ops.Union(ga, gb, 0.25, true)
	w, ok := out.GetEdgeWeight(sym("a"), sym("b"))
	require.True(t, ok)
	require.InDelta(t, 0.25*20+0.75*10, w, 1e-9)
}

// TestUnionPreservesUniqueEdges verifies edges only in ga/gb survive untouched/unscaled.
func TestUnionPreservesUniqueEdges(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 1.0})
	gb := build([3]interface{}{"c", "d", 9.0})
	out := ops.Union(ga, gb, 0.5, true)
	wab, _ := out.GetEdgeWeight(sym("a"), sym("b"))
	wcd, _ := out.GetEdgeWeight(sym("c"), sym("d"))
	require.Equal(t, 1.0, wab)
	require.Equal(t, 9.0, wcd)
}

// TestInverseIntersectionSoundness verifies invariant 8:
// E(InverseIntersection(Ga,Gb)) = E(Ga) \ E(Gb).
func TestInverseIntersectionSoundness(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 1.0}, [3]interface{}{"b", "c", 2.0})
	gb := build([3]interface{}{"b", "c", 5.0})
	out := ops.InverseIntersection(ga, gb, true)
	require.True(t, out.HasEdge(sym("a"), sym("b")))
	require.False(t, out.HasEdge(sym("b"), sym("c")))
	require.Equal(t, 1, out.EdgeCount())
}

// TestIntersectMean verifies Intersect takes the arithmetic mean of shared edges.
func TestIntersectMean(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 2.0}, [3]interface{}{"x", "y", 1.0})
	gb := build([3]interface{}{"a", "b", 6.0})
	out := ops.Intersect(ga, gb, true)
	require.Equal(t, 1, out.EdgeCount())
	w, _ := out.GetEdgeWeight(sym("a"), sym("b"))
	require.Equal(t, 4.0, w)
}

// TestDeltaSymmetricDifference verifies Delta keeps edges in exactly one operand.
func TestDeltaSymmetricDifference(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 1.0}, [3]interface{}{"shared", "x", 1.0})
	gb := build([3]interface{}{"c", "d", 1.0}, [3]interface{}{"shared", "x", 9.0})
	out := ops.Delta(ga, gb, true)
	require.True(t, out.HasEdge(sym("a"), sym("b")))
	require.True(t, out.HasEdge(sym("c"), sym("d")))
	require.False(t, out.HasEdge(sym("shared"), sym("x")))
}

// TestDeepCopyFalseMutatesInPlace verifies the deepCopy=false contract:
// the left operand itself is mutated and returned.
func TestDeepCopyFalseMutatesInPlace(t *testing.T) {
	ga := build([3]interface{}{"a", "b", 1.0})
	gb := build([3]interface{}{"c", "d", 1.0})
	out := ops.Union(ga, gb, 1.0, false)
	require.Same(t, ga, out)
	require.True(t, ga.HasEdge(sym("c"), sym("d")))
}

// TestLtoRNaryFoldsLeftToRight verifies the n-ary reduction folds in order.
func TestLtoRNaryFoldsLeftToRight(t *testing.T) {
	g1 := build([3]interface{}{"a", "b", 1.0})
	g2 := build([3]interface{}{"b", "c", 1.0})
	g3 := build([3]interface{}{"c", "d", 1.0})
	out := ops.LtoRNary(ops.DeltaOp(), []*digraph.Graph{g1, g2, g3}, true)
	require.True(t, out.HasEdge(sym("a"), sym("b")))
	require.True(t, out.HasEdge(sym("c"), sym("d")))
}
