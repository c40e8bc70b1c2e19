// Package arraygraph implements ArrayGraph2D: a proximity graph over a 2D
// symbol matrix using a square window and a stride (spec.md §4.6).
// Grounded on gridgraph's cell/window treatment for 2D data, generalized
// from GridGraph's fixed 4/8-connectivity to an arbitrary square window.
package arraygraph

import (
	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/symbol"
)

// Build constructs a digraph.Graph over matrix M using a square window of
// side `window` and a stride `s`.
//
// For each visited cell (y,x) — y,x stepping by s across [0,height) x
// [0,width) — every neighbor (y',x') in the square window
// [y-w/2, y+w/2) x [x-w/2, x+w/2), clamped to matrix bounds and excluding
// (y,x) itself, contributes +1 to the directed edge from the singleton
// Symbol wrapping M[y][x] to the singleton Symbol wrapping M[y'][x'].
// Half-window uses integer (truncating) division; the window is
// left-inclusive, right-exclusive.
func Build(m [][]string, window, stride int) (*digraph.Graph, error) {
	if window < 1 {
		return nil, arraygraphErrorf("Build", "window must be >= 1, got %d", window)
	}
	if stride < 1 {
		return nil, arraygraphErrorf("Build", "stride must be >= 1, got %d", stride)
	}
	height := len(m)
	if height == 0 {
		return digraph.New(), nil
	}
	width := len(m[0])
	for i, row := range m {
		if len(row) != width {
			return nil, arraygraphErrorf("Build", "row %d has length %d, want %d (matrix must be rectangular)", i, len(row), width)
		}
	}

	g := digraph.New()
	half := window / 2

	for y := 0; y < height; y += stride {
		for x := 0; x < width; x += stride {
			center := symbol.Join(m[y][x])
			g.AddNode(center)

			yLo, yHi := clamp(y-half, 0, height), clamp(y+half, 0, height)
			xLo, xHi := clamp(x-half, 0, width), clamp(x+half, 0, width)
			for yp := yLo; yp < yHi; yp++ {
				for xp := xLo; xp < xHi; xp++ {
					if yp == y && xp == x {
						continue
					}
					neighbor := symbol.Join(m[yp][xp])
					g.IncrementEdge(center, neighbor)
				}
			}
		}
	}

	return g, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
