package collector_test

import (
	"testing"

	"github.com/katalvlaran/ngramgraph/collector"
	"github.com/stretchr/testify/require"
)

func fixedMatrix(rows, cols int, seed int) [][]string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	out := make([][]string, rows)
	k := seed
	for y := 0; y < rows; y++ {
		out[y] = make([]string, cols)
		for x := 0; x < cols; x++ {
			out[y][x] = string(letters[k%len(letters)])
			k += 7 // a fixed, non-trivial stride through the alphabet
		}
	}

	return out
}

func transpose(m [][]string) [][]string {
	if len(m) == 0 {
		return nil
	}
	out := make([][]string, len(m[0]))
	for x := range out {
		out[x] = make([]string, len(m))
		for y := range m {
			out[x][y] = m[y][x]
		}
	}

	return out
}

// TestHPGCollectorEmptyInputRejected verifies Add/AppropriatenessOf raise
// InvalidArgument on an empty matrix.
func TestHPGCollectorEmptyInputRejected(t *testing.T) {
	c, err := collector.NewHPGCollector(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, c.Add(nil), collector.ErrInvalidArgument)
	_, err = c.AppropriatenessOf(nil)
	require.ErrorIs(t, err, collector.ErrInvalidArgument)
}

// TestHPGCollectorEmptyCollectorIsZero verifies scoring with no stored
// documents returns 0, not an error.
func TestHPGCollectorEmptyCollectorIsZero(t *testing.T) {
	c, err := collector.NewHPGCollector(2, 2)
	require.NoError(t, err)

	v, err := c.AppropriatenessOf(fixedMatrix(4, 4, 1))
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestHPGCollectorScenario mirrors the published fixed-matrix scenario
// (S4): every score lies in [0,1], and the mean per-document similarity
// against a trained matrix is higher than against a fresh, untrained
// matrix.
func TestHPGCollectorScenario(t *testing.T) {
	c, err := collector.NewHPGCollector(2, 2)
	require.NoError(t, err)

	train0 := fixedMatrix(4, 4, 1)
	train1 := fixedMatrix(5, 5, 2)
	require.NoError(t, c.Add(train0))
	require.NoError(t, c.Add(train1))

	onTrain0, err := c.AppropriatenessOf(train0)
	require.NoError(t, err)

	onTransposedTrain1, err := c.AppropriatenessOf(transpose(train1))
	require.NoError(t, err)

	fresh := fixedMatrix(6, 6, 99)
	onFresh, err := c.AppropriatenessOf(fresh)
	require.NoError(t, err)

	require.GreaterOrEqual(t, onTrain0, 0.0)
	require.LessOrEqual(t, onTrain0, 1.0)
	require.GreaterOrEqual(t, onTransposedTrain1, 0.0)
	require.LessOrEqual(t, onTransposedTrain1, 1.0)
	require.GreaterOrEqual(t, onFresh, 0.0)
	require.Less(t, onFresh, onTrain0)
}
