package digraph_test

import (
	"testing"

	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/symbol"
	"github.com/stretchr/testify/require"
)

func sym(s string) symbol.Symbol { return symbol.Symbol(s) }

// TestAddOrUpdateEdge verifies edge uniqueness: a second insertion at the
// same (u,v) updates weight rather than creating a parallel edge.
func TestAddOrUpdateEdge(t *testing.T) {
	g := digraph.New()
	g.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)
	require.Equal(t, 1, g.EdgeCount())

	g.AddOrUpdateEdge(sym("a"), sym("b"), 5.0)
	require.Equal(t, 1, g.EdgeCount())
	w, ok := g.GetEdgeWeight(sym("a"), sym("b"))
	require.True(t, ok)
	require.Equal(t, 5.0, w)
}

// TestIncrementEdge verifies strict weight monotonicity under positive increments.
func TestIncrementEdge(t *testing.T) {
	g := digraph.New()
	g.IncrementEdge(sym("a"), sym("b"))
	w1, _ := g.GetEdgeWeight(sym("a"), sym("b"))
	require.Equal(t, 1.0, w1)

	g.IncrementEdge(sym("a"), sym("b"), 2.5)
	w2, _ := g.GetEdgeWeight(sym("a"), sym("b"))
	require.Equal(t, 3.5, w2)
	require.Greater(t, w2, w1)
}

// TestNumberOfEdgesIsNodeCount locks in the legacy accessor pitfall: the
// spec mandates NumberOfEdges() return node count, not edge count.
func TestNumberOfEdgesIsNodeCount(t *testing.T) {
	g := digraph.New()
	g.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)
	g.AddOrUpdateEdge(sym("b"), sym("c"), 1.0)

	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, g.NodeCount(), g.NumberOfEdges())
}

// TestRemoveIsolatedNodes ensures isolates (no in or out edges) are dropped
// and connected nodes survive.
func TestRemoveIsolatedNodes(t *testing.T) {
	g := digraph.New()
	g.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)
	g.AddNode(sym("isolated"))
	require.Equal(t, 3, g.NodeCount())

	g.RemoveIsolatedNodes()
	require.Equal(t, 2, g.NodeCount())
	require.False(t, g.HasNode(sym("isolated")))
}

// TestEqualComparesWeights verifies structural equality requires same
// nodes, same edges, and equal per-edge weights.
func TestEqualComparesWeights(t *testing.T) {
	g1 := digraph.New()
	g1.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)

	g2 := g1.Clone()
	require.True(t, g1.Equal(g2))

	g2.AddOrUpdateEdge(sym("a"), sym("b"), 2.0)
	require.False(t, g1.Equal(g2))
}

// TestCloneIndependence verifies Clone shares no mutable state with its source.
func TestCloneIndependence(t *testing.T) {
	g1 := digraph.New()
	g1.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)
	g2 := g1.Clone()

	g2.AddOrUpdateEdge(sym("b"), sym("c"), 1.0)
	require.Equal(t, 1, g1.EdgeCount())
	require.Equal(t, 2, g2.EdgeCount())
}

// TestEdgesWithDataDeterministicOrder verifies (From,To)-sorted iteration.
func TestEdgesWithDataDeterministicOrder(t *testing.T) {
	g := digraph.New()
	g.AddOrUpdateEdge(sym("b"), sym("a"), 1.0)
	g.AddOrUpdateEdge(sym("a"), sym("b"), 1.0)
	g.AddOrUpdateEdge(sym("a"), sym("a"), 1.0)

	edges := g.EdgesWithData()
	require.Len(t, edges, 3)
	require.Equal(t, sym("a"), edges[0].From)
	require.Equal(t, sym("a"), edges[0].To)
	require.Equal(t, sym("a"), edges[1].From)
	require.Equal(t, sym("b"), edges[1].To)
	require.Equal(t, sym("b"), edges[2].From)
}
