package arraygraph_test

import (
	"testing"

	"github.com/katalvlaran/ngramgraph/arraygraph"
	"github.com/stretchr/testify/require"
)

func grid(rows ...string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = string(c)
		}
		out[i] = cells
	}

	return out
}

// TestBuildExcludesSelf verifies the center cell never gets an edge to itself.
// Every cell holds a distinct symbol, so a self-loop could only come from
// the center cell itself (equal symbols in different cells do link).
func TestBuildExcludesSelf(t *testing.T) {
	m := grid("abc", "def", "ghi")
	g, err := arraygraph.Build(m, 3, 1)
	require.NoError(t, err)
	for _, e := range g.EdgesWithData() {
		require.False(t, e.From == e.To)
	}
}

// TestBuildClampsAtBoundary verifies a corner cell's window is clamped,
// not wrapped, and still produces edges to its in-bounds neighbors.
func TestBuildClampsAtBoundary(t *testing.T) {
	m := grid("ab", "cd")
	_, err := arraygraph.Build(m, 2, 1)
	require.NoError(t, err)
	// corner 'a' at (0,0), window=2 => half=1, range y:[-1,1)->[0,1), x:[-1,1)->[0,1)
	// clamped to [0,1)x[0,1): only itself, so no neighbors from 'a' alone at window=2.
	// Use window=4 to force clamped-but-nonempty neighbor set for 'a'.
	g2, err := arraygraph.Build(m, 4, 1)
	require.NoError(t, err)
	require.True(t, g2.HasEdge("a", "b"))
	require.True(t, g2.HasEdge("a", "d"))
}

// TestBuildStrideSkipsCells verifies a stride > 1 visits a strict subset
// of cells as centers, shrinking the resulting node/edge surface.
func TestBuildStrideSkipsCells(t *testing.T) {
	m := grid("abcd", "efgh", "ijkl", "mnop")
	gFull, err := arraygraph.Build(m, 3, 1)
	require.NoError(t, err)
	gStrided, err := arraygraph.Build(m, 3, 2)
	require.NoError(t, err)
	require.Greater(t, gFull.EdgeCount(), gStrided.EdgeCount())
}

// TestInvalidArgument verifies configuration validation.
func TestInvalidArgument(t *testing.T) {
	_, err := arraygraph.Build(grid("ab"), 0, 1)
	require.ErrorIs(t, err, arraygraph.ErrInvalidArgument)
	_, err = arraygraph.Build(grid("ab"), 1, 0)
	require.ErrorIs(t, err, arraygraph.ErrInvalidArgument)
	_, err = arraygraph.Build([][]string{{"a", "b"}, {"c"}}, 1, 1)
	require.ErrorIs(t, err, arraygraph.ErrInvalidArgument)
}
