// Package digraph implements WeightedDigraph: a minimal weighted directed
// graph supporting add/update/lookup of edges, iteration, node/edge counts,
// edge-set membership, and structural equality including weights.
//
// Nodes are symbol.Symbol values. Edges carry a non-negative float64
// weight. At most one edge exists per ordered (u,v) pair — a second
// insertion via AddOrUpdateEdge or IncrementEdge updates the existing
// edge rather than creating a parallel one. Self-loops are permitted by
// the data model; the builders in proximity and arraygraph emit one
// whenever a symbol co-occurs with an equal symbol (a repeated n-gram, or
// two cells holding the same value).
//
// Graph splits its locking the way core.Graph does: muNodes guards the
// node set, muEdges guards the edge catalog, adjacency, and weight
// extrema. This is carried from the teacher even though default
// execution (see the hpg package) is single-threaded, because the
// parallel HPG variant shares *Graph values read-only across worker
// goroutines and callers of ops with deepCopy=false may share a left
// operand across goroutines (spec.md §5).
package digraph

import (
	"math"
	"sync"

	"github.com/katalvlaran/ngramgraph/symbol"
)

// Edge is a directed, weighted connection between two Symbols.
type Edge struct {
	From   symbol.Symbol
	To     symbol.Symbol
	Weight float64
}

// Graph is a WeightedDigraph: a set of Symbol nodes and a set of directed,
// weighted edges between them, with tracked weight extrema.
//
// adjacency[from][to] holds the single Edge from "from" to "to"; there is
// no parallel structure for undirected mirroring — symmetry, when it is
// wanted, is the proximity builder's job (it canonically orients edges
// smaller→larger so no mirror edge is ever stored).
type Graph struct {
	muNodes sync.RWMutex // guards nodes
	muEdges sync.RWMutex // guards adjacency, edgeCount, minWeight, maxWeight

	nodes     map[symbol.Symbol]struct{}
	adjacency map[symbol.Symbol]map[symbol.Symbol]*Edge

	edgeCount int
	minWeight float64
	maxWeight float64
}

// New returns an empty Graph. minWeight starts at +Inf and maxWeight at 0,
// per the spec's extrema-tracking contract; both are corrected as edges
// are added.
func New() *Graph {
	return &Graph{
		nodes:     make(map[symbol.Symbol]struct{}),
		adjacency: make(map[symbol.Symbol]map[symbol.Symbol]*Edge),
		minWeight: math.Inf(1),
		maxWeight: 0,
	}
}

// ensureRow allocates the adjacency row for s if absent. Must be called
// under muEdges write lock.
func ensureRow(g *Graph, s symbol.Symbol) {
	if g.adjacency[s] == nil {
		g.adjacency[s] = make(map[symbol.Symbol]*Edge)
	}
}

// ReplaceFrom atomically swaps g's contents for src's, used by the ops
// package's mutate-in-place (deepCopy=false) operators. It copies field
// values rather than the struct itself, so g's own mutexes are never
// overwritten or copied.
func (g *Graph) ReplaceFrom(src *Graph) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	g.nodes = src.nodes
	g.adjacency = src.adjacency
	g.edgeCount = src.edgeCount
	g.minWeight = src.minWeight
	g.maxWeight = src.maxWeight
}
