// File: hpg.go
// Role: the HPG struct — a flat ordered vector of levels, with no cyclic
// parent/child pointers between them (spec.md §9's explicit instruction,
// REDESIGN FLAGS item 1), grounded on hpg.py's HPG/HPG2D but restructured
// away from its parent/child object graph.
package hpg

import (
	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/gindex"
)

// HPG is the result of a hierarchical proximity graph construction: level
// 0 built directly on the input matrix, levels 1..L built on symbol
// matrices assigned by a per-level GraphIndex over neighborhood patches.
type HPG struct {
	Levels  []*digraph.Graph    // Levels[0..L], len == Config.Levels+1
	Data    [][][]string        // Data[ℓ] is the level-ℓ matrix (Data[0] is the input)
	Indices []*gindex.GraphIndex // Indices[i] serves Levels[i+1], len == Config.Levels
	Config  Config
}

// NumLevels returns len(Levels) (== Config.Levels+1, invariant 10).
func (h *HPG) NumLevels() int { return len(h.Levels) }

// positions returns 0, stride, 2*stride, ... < n, matching Python's
// range(0, n, stride) used throughout hpg.py/array_graph.py.
func positions(n, stride int) []int {
	out := make([]int, 0, (n+stride-1)/max(stride, 1))
	for i := 0; i < n; i += stride {
		out = append(out, i)
	}

	return out
}

func clampIdx(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
