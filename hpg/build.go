// File: build.go
// Role: the level-by-level graph -> patch -> symbol -> next-level-data
// pipeline (spec.md §4.7), grounded on hpg.py's HPG2D.as_graph and its
// parallel sibling HPG2DParallel.as_graph.
package hpg

import (
	"sync"

	"github.com/katalvlaran/ngramgraph/arraygraph"
	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/gindex"
	"github.com/katalvlaran/ngramgraph/similarity"
	"github.com/katalvlaran/ngramgraph/symbol"
)

// Build2D constructs an HPG over a rectangular symbol matrix (spec.md
// §4.7): level 0 is built directly on matrix; each subsequent level ℓ
// extracts a clamped window-ℓ·w patch of the previous level's data around
// each stepped cell (patches may overlap), assigns each patch a symbol
// via a dedicated GraphIndex, and builds the level-ℓ
// graph over the resulting symbol matrix.
//
// With Config.Workers > 1, patch-graph construction within a level runs
// on a bounded worker pool, but symbols are still assigned to D_ℓ in
// strict submission (row-major) order, so results are byte-identical to
// the sequential path (spec.md §4.7 "Parallel variant", invariant 9).
func Build2D(matrix [][]string, window, levels int, opts ...Option) (*HPG, error) {
	cfg, err := newConfig(window, levels, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Metric == nil {
		cfg.Metric = func(g1, g2 *digraph.Graph) float64 {
			v, _ := similarity.NVS(g1, g2)

			return v
		}
	}

	g0, err := arraygraph.Build(matrix, cfg.Window, cfg.Stride)
	if err != nil {
		return nil, err
	}

	h := &HPG{
		Config:  cfg,
		Levels:  make([]*digraph.Graph, levels+1),
		Data:    make([][][]string, 1, levels+1),
		Indices: make([]*gindex.GraphIndex, levels),
	}
	h.Levels[0] = g0
	h.Data[0] = matrix

	for lvl := 1; lvl <= levels; lvl++ {
		currentWindow := window * lvl
		prev := h.Data[lvl-1]

		idx, err := gindex.New(cfg.Metric,
			gindex.WithThetaLo(cfg.ThetaLo),
			gindex.WithThetaHi(cfg.ThetaHi),
			gindex.WithDeepCopy(cfg.DeepCopy),
		)
		if err != nil {
			return nil, err
		}
		h.Indices[lvl-1] = idx

		current, err := assignLevelSymbols(idx, prev, currentWindow, cfg)
		if err != nil {
			return nil, err
		}
		cfg.Logger.Debugf("level %02d: %d neighborhoods assigned", lvl, idx.Len())
		h.Data = append(h.Data, current)
	}

	for lvl := 1; lvl <= levels; lvl++ {
		g, err := arraygraph.Build(h.Data[lvl], window*lvl, cfg.Stride)
		if err != nil {
			return nil, err
		}
		if g.EdgeCount() == 0 {
			cfg.Logger.Debugf("level %02d collapsed to an empty graph (stride=%d)", lvl, cfg.Stride)
		}
		h.Levels[lvl] = g
	}

	return h, nil
}

// Build1D constructs an HPG over a 1D symbol sequence by treating it as a
// single-row matrix. arraygraph.Build's half-window clamp already
// degenerates correctly on a height-1 matrix (the y-window always
// resolves to the lone row), so the 2D pipeline serves the 1D case
// without a parallel, duplicated implementation (unifying C3 and C6's
// patch-construction role — spec.md §4.7 allows either builder per
// dimensionality, and ArrayGraph2D is already what hpg.py itself uses for
// every level regardless of the source data's native dimensionality).
func Build1D(sequence []string, window, levels int, opts ...Option) (*HPG, error) {
	return Build2D([][]string{sequence}, window, levels, opts...)
}

type patchTask struct {
	cy, cx int
	patch  [][]string
}

// assignLevelSymbols builds one patch graph per stepped cell of prev,
// inserts each into idx, and places the resulting symbol into the
// corresponding cell of the level-ℓ data matrix. Patch-graph construction
// may run concurrently (Workers>1); insertion into idx always happens
// afterward in row-major submission order, so the returned matrix and
// idx's contents are independent of Workers.
func assignLevelSymbols(idx *gindex.GraphIndex, prev [][]string, currentWindow int, cfg Config) ([][]string, error) {
	ys := positions(len(prev), cfg.Stride)
	var width int
	if len(prev) > 0 {
		width = len(prev[0])
	}
	xs := positions(width, cfg.Stride)

	tasks := make([]patchTask, 0, len(ys)*len(xs))
	for cy, py := range ys {
		for cx, px := range xs {
			tasks = append(tasks, patchTask{cy: cy, cx: cx, patch: extractPatch(prev, currentWindow, py, px)})
		}
	}

	graphs, err := buildPatchGraphs(tasks, currentWindow, cfg)
	if err != nil {
		return nil, err
	}

	current := make([][]string, len(ys))
	for row := range current {
		current[row] = make([]string, len(xs))
	}
	for i, tk := range tasks {
		symIdx := idx.InsertOrLookup(graphs[i])
		current[tk.cy][tk.cx] = string(symbol.FromIndex(symIdx))
	}

	return current, nil
}

// buildPatchGraphs constructs one digraph.Graph per task, in parallel
// when cfg.Workers>1, but always returns results indexed by submission
// order (tasks[i] <-> result[i]).
func buildPatchGraphs(tasks []patchTask, currentWindow int, cfg Config) ([]*digraph.Graph, error) {
	graphs := make([]*digraph.Graph, len(tasks))

	if cfg.Workers <= 1 {
		for i, tk := range tasks {
			g, err := arraygraph.Build(tk.patch, currentWindow, cfg.Stride)
			if err != nil {
				return nil, err
			}
			graphs[i] = g
		}

		return graphs, nil
	}

	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))
	for i, tk := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, patch [][]string) {
			defer wg.Done()
			defer func() { <-sem }()
			g, err := arraygraph.Build(patch, currentWindow, cfg.Stride)
			graphs[i] = g
			errs[i] = err
		}(i, tk.patch)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return graphs, nil
}

func extractPatch(matrix [][]string, window, y, x int) [][]string {
	height := len(matrix)
	if height == 0 {
		return nil
	}
	width := len(matrix[0])
	half := window / 2

	yLo, yHi := clampIdx(y-half, 0, height), clampIdx(y+half, 0, height)
	xLo, xHi := clampIdx(x-half, 0, width), clampIdx(x+half, 0, width)

	patch := make([][]string, 0, yHi-yLo)
	for yy := yLo; yy < yHi; yy++ {
		row := append([]string(nil), matrix[yy][xLo:xHi]...)
		patch = append(patch, row)
	}

	return patch
}
