package proximity

import (
	"math"

	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/ngram"
	"github.com/katalvlaran/ngramgraph/symbol"
)

// Build constructs a digraph.Graph from atoms using the given n-gram rank,
// proximity window, and options (spec.md §4.3). It is the single entry
// point for all three weighting variants; BuildAsymmetric/BuildSymmetric/
// BuildGaussNorm below are named convenience wrappers matching the
// external-interface names in spec.md §6.
func Build(atoms []string, n, dWin int, opts ...Option) (*digraph.Graph, error) {
	cfg, err := newConfig(n, dWin, opts...)
	if err != nil {
		return nil, err
	}

	grams := ngram.ExtractAll(atoms, cfg.N, cfg.Pad)
	g := digraph.New()
	for _, s := range grams {
		g.AddNode(s)
	}

	switch cfg.Policy {
	case Symmetric:
		buildSymmetric(g, grams, cfg.DWin, nil)
	case GaussNorm:
		buildSymmetric(g, grams, cfg.DWin, gaussWeightFn(cfg.Sigma))
	default:
		buildAsymmetric(g, grams, cfg.DWin)
	}

	return g, nil
}

// BuildAsymmetric implements the DocumentNGramGraph variant: for each
// position i, directed edges (t_j, t_i) for j=i-D_win-1..i-1 (j>=0), weight
// incremented by 1 per co-occurrence. The Python original's buildGraph
// (original_source/.../DocumentNGramGraph.py) grows its window by one
// extra step before it starts popping, so the steady-state window holds
// D_win+1 grams, not D_win; that is what's implemented here.
func BuildAsymmetric(atoms []string, n, dWin int, opts ...Option) (*digraph.Graph, error) {
	return Build(atoms, n, dWin, append(opts, WithPolicy(Asymmetric))...)
}

// BuildSymmetric implements the DocumentNGramSymWinGraph variant.
func BuildSymmetric(atoms []string, n, dWin int, opts ...Option) (*digraph.Graph, error) {
	return Build(atoms, n, dWin, append(opts, WithPolicy(Symmetric))...)
}

// BuildGaussNorm implements the DocumentNGramGaussNormGraph variant.
func BuildGaussNorm(atoms []string, n, dWin int, opts ...Option) (*digraph.Graph, error) {
	return Build(atoms, n, dWin, append(opts, WithPolicy(GaussNorm))...)
}

func buildAsymmetric(g *digraph.Graph, grams []symbol.Symbol, dWin int) {
	if len(grams) == 0 {
		return
	}
	window := []symbol.Symbol{grams[0]}
	for i := 1; i < len(grams); i++ {
		cur := grams[i]
		for _, w := range window {
			g.IncrementEdge(w, cur)
		}
		if len(window) >= dWin+1 {
			window = window[1:]
		}
		window = append(window, cur)
	}
}

// buildSymmetric connects t_i with every neighbor within [i-dWin, i+dWin]
// excluding i, storing the edge oriented from the lexicographically
// smaller Symbol to the larger (so the pair is visited and weighted
// exactly once regardless of which side of the window found it first).
// weightFn, if non-nil, derives the contribution from the positional
// distance d in [1, dWin] (GaussNorm); nil means the constant +1 of the
// plain symmetric variant.
func buildSymmetric(g *digraph.Graph, grams []symbol.Symbol, dWin int, weightFn func(d int) float64) {
	n := len(grams)
	for i := 0; i < n; i++ {
		for d := 1; d <= dWin; d++ {
			j := i + d
			if j >= n {
				break
			}
			u, v := grams[i], grams[j]
			if u > v {
				u, v = v, u
			}
			if weightFn != nil {
				g.IncrementEdge(u, v, weightFn(d))
			} else {
				g.IncrementEdge(u, v)
			}
		}
	}
}

// gaussWeightFn returns the per-co-occurrence contribution
// exp(-(d-1)^2 / (2*sigma^2)) for positional distance d.
func gaussWeightFn(sigma float64) func(d int) float64 {
	return func(d int) float64 {
		x := float64(d - 1)

		return math.Exp(-(x * x) / (2 * sigma * sigma))
	}
}
