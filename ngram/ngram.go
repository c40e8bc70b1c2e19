// Package ngram implements NGramExtractor: the production of the ordered
// sequence of overlapping n-grams from an input sequence of atoms
// (spec.md §4.2). An atom is any pre-tokenized string unit — a rune, a
// word, whatever the caller chose; ngram itself performs no tokenization.
//
// Grounded on DocumentNGramGraph.build_ngram (original_source): a sliding
// window of length n over Data, yielded as a new slice at every position.
package ngram

import "github.com/katalvlaran/ngramgraph/symbol"

// Extractor produces a finite, restartable, single-pass sequence of
// n-grams over atoms, encoded as symbol.Symbol tuples.
type Extractor struct {
	atoms []string
	n     int
	pos   int
}

// NewExtractor builds an Extractor for the given atoms and rank n (n>=1).
// When pad is true, atoms is right-padded with n-1 symbol.NullAtom
// tokens before extraction begins, and the yielded tuples are windows
// over that padded view.
//
// NewExtractor never errors on n<1 itself; callers validating
// configuration at construction time (spec.md §7) should reject n<1
// before calling this (the builders in the proximity package do).
func NewExtractor(atoms []string, n int, pad bool) *Extractor {
	view := atoms
	if pad && n > 1 {
		view = make([]string, 0, len(atoms)+n-1)
		view = append(view, atoms...)
		for i := 0; i < n-1; i++ {
			view = append(view, symbol.NullAtom)
		}
	}

	return &Extractor{atoms: view, n: n, pos: 0}
}

// Len returns the number of n-grams this Extractor will yield: L-n+1 for
// L>=n, or exactly 1 in the degenerate mode (L<n, the whole input as a
// single n-gram) preserved from legacy behavior.
func (e *Extractor) Len() int {
	l := len(e.atoms)
	if l < e.n {
		return 1
	}

	return l - e.n + 1
}

// Next returns the next n-gram Symbol and true, or a zero Symbol and
// false once exhausted.
func (e *Extractor) Next() (symbol.Symbol, bool) {
	total := e.Len()
	if e.pos >= total {
		return "", false
	}

	l := len(e.atoms)
	var window []string
	if l < e.n {
		window = e.atoms // degenerate mode: whole input is the single n-gram
	} else {
		window = e.atoms[e.pos : e.pos+e.n]
	}
	e.pos++

	return symbol.Join(window...), true
}

// Reset rewinds the Extractor so Next() replays the sequence from the start.
func (e *Extractor) Reset() {
	e.pos = 0
}

// ExtractAll is the convenience non-iterator form: it collects the full
// n-gram sequence into a slice.
func ExtractAll(atoms []string, n int, pad bool) []symbol.Symbol {
	ex := NewExtractor(atoms, n, pad)
	out := make([]symbol.Symbol, 0, ex.Len())
	for {
		s, ok := ex.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}

	return out
}
