// File: index.go
// Role: GraphIndex (spec.md §4.8, C8) — an ordered list of
// (representative graph, count) entries supporting approximate
// deduplication by similarity, grounded line-for-line on
// graph_index.py's GraphIndex.__getitem__.
package gindex

import (
	"sync"

	"github.com/katalvlaran/ngramgraph/digraph"
	"github.com/katalvlaran/ngramgraph/ops"
)

// entry pairs a stored representative graph with how many inputs have
// been folded into it.
type entry struct {
	graph *digraph.Graph
	count int
}

// GraphIndex deduplicates a stream of graphs against a growing list of
// representatives, merging near-duplicates and creating a new entry for
// genuinely novel input. It is safe for concurrent use; InsertOrLookup
// serializes internally since each insertion can mutate or append to the
// shared entry list.
type GraphIndex struct {
	mu      sync.Mutex
	metric  Metric
	cfg     Config
	entries []entry
}

// New constructs a GraphIndex comparing candidates with metric (typically
// a value-only wrapper around similarity.NVS, per original_source's
// SimilarityNVS default).
func New(metric Metric, opts ...Option) (*GraphIndex, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &GraphIndex{metric: metric, cfg: cfg}, nil
}

// InsertOrLookup scans existing entries in insertion order. For each:
//   - similarity >= ThetaHi: exact match, return its index unchanged.
//   - similarity >= ThetaLo: near match, merge g into it with learning
//     factor lf = 1-count/(count+1) (so newer merges count less as count
//     grows), increment its count, and return its index.
//   - otherwise, if the miss is non-trivial (1-similarity > 1e-5), strip
//     the matched entry's edges out of g via InverseIntersection and keep
//     scanning the remaining entries against the reduced g.
//
// If no entry matches, g (possibly already stripped by prior misses) is
// appended as a new entry with count 1, and its new index is returned.
func (idx *GraphIndex) InsertOrLookup(g *digraph.Graph) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for i := range idx.entries {
		other := idx.entries[i].graph
		count := idx.entries[i].count

		sim := idx.metric(g, other)
		idx.cfg.Logger.Debugf("comparing candidate against entry %02d: similarity=%.3f", i, sim)

		if sim >= idx.cfg.ThetaHi {
			idx.cfg.Logger.Debugf("exact match at entry %02d", i)

			return i
		}

		if sim >= idx.cfg.ThetaLo {
			idx.cfg.Logger.Debugf("near match at entry %02d, merging", i)
			lf := 1 - float64(count)/float64(count+1)
			merged := ops.Union(other, g, lf, idx.cfg.DeepCopy)
			idx.entries[i] = entry{graph: merged, count: count + 1}

			return i
		}

		if 1.0-sim > 1e-5 {
			g = ops.InverseIntersection(g, other, idx.cfg.DeepCopy)
		}
	}

	idx.cfg.Logger.Debugf("no match found, appending new entry %02d", len(idx.entries))
	idx.entries = append(idx.entries, entry{graph: g, count: 1})

	return len(idx.entries) - 1
}

// Len reports how many distinct representative entries are stored.
func (idx *GraphIndex) Len() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return len(idx.entries)
}

// Representative returns the representative graph and fold count at i, or
// (nil, 0, false) if i is out of range.
func (idx *GraphIndex) Representative(i int) (*digraph.Graph, int, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if i < 0 || i >= len(idx.entries) {
		return nil, 0, false
	}

	return idx.entries[i].graph, idx.entries[i].count, true
}
