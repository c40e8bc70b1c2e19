package hpg_test

import (
	"testing"

	"github.com/katalvlaran/ngramgraph/hpg"
	"github.com/stretchr/testify/require"
)

func grid(rows ...string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, r := range row {
			cells[j] = string(r)
		}
		out[i] = cells
	}

	return out
}

// TestLevelCountMatchesInvariant verifies invariant 10: HPG produces
// exactly L+1 levels.
func TestLevelCountMatchesInvariant(t *testing.T) {
	m := grid("abcde", "fghij", "klmno", "pqrst", "uvwxy")
	for _, levels := range []int{1, 2, 3, 4} {
		h, err := hpg.Build2D(m, 2, levels)
		require.NoError(t, err)
		require.Equal(t, levels+1, h.NumLevels())
	}
}

// TestBaseLevelMatchesArrayGraph sanity-checks level 0 is non-trivial for
// a non-degenerate matrix.
func TestBaseLevelMatchesArrayGraph(t *testing.T) {
	m := grid("abcde", "fghij", "klmno", "pqrst", "uvwxy")
	h, err := hpg.Build2D(m, 2, 1)
	require.NoError(t, err)
	require.Greater(t, h.Levels[0].EdgeCount(), 0)
}

// TestStrideCollapseYieldsEmptyLevelWithoutError verifies the §4.7 edge
// case: a large stride can collapse D_ℓ to a singleton, producing an
// empty (but valid) graph rather than an error.
func TestStrideCollapseYieldsEmptyLevelWithoutError(t *testing.T) {
	m := grid("abcde", "fghij", "klmno", "pqrst", "uvwxy")
	h, err := hpg.Build2D(m, 2, 1, hpg.WithStride(5))
	require.NoError(t, err)
	require.Equal(t, 0, h.Levels[1].EdgeCount())
}

// TestParallelVariantIsDeterministic verifies invariant 9: GraphIndex
// symbol assignment under the parallel worker-pool path matches the
// sequential path exactly, cell for cell.
func TestParallelVariantIsDeterministic(t *testing.T) {
	m := grid("abcdefgh", "ijklmnop", "qrstuvwx", "abcdefgh", "ijklmnop", "qrstuvwx", "abcdefgh", "ijklmnop")

	seq, err := hpg.Build2D(m, 2, 2)
	require.NoError(t, err)
	par, err := hpg.Build2D(m, 2, 2, hpg.WithWorkers(8))
	require.NoError(t, err)

	require.Equal(t, len(seq.Data), len(par.Data))
	for lvl := range seq.Data {
		require.Equal(t, seq.Data[lvl], par.Data[lvl])
	}
	for lvl := range seq.Levels {
		require.True(t, seq.Levels[lvl].Equal(par.Levels[lvl]))
	}
}

// TestBuild1DDelegatesToSingleRowMatrix verifies the 1D convenience
// wrapper runs without error and yields the expected level count.
func TestBuild1DDelegatesToSingleRowMatrix(t *testing.T) {
	h, err := hpg.Build1D([]string{"g", "a", "t", "t", "a", "c", "a"}, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 3, h.NumLevels())
}

// TestInvalidConfigRejected verifies newConfig validation surfaces
// through the public Build2D entry point.
func TestInvalidConfigRejected(t *testing.T) {
	_, err := hpg.Build2D(grid("ab", "cd"), 0, 1)
	require.ErrorIs(t, err, hpg.ErrInvalidArgument)

	_, err = hpg.Build2D(grid("ab", "cd"), 1, 1, hpg.WithMergingMargins(0.95, 0.5))
	require.ErrorIs(t, err, hpg.ErrInvalidArgument)
}
