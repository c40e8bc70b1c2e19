// File: methods_edges.go
// Role: Edge lifecycle & queries: AddOrUpdateEdge/IncrementEdge/HasEdge/
//       GetEdgeWeight/NeighborsOut/EdgesWithData/EdgeCount/NumberOfEdges.
// Determinism:
//   - EdgesWithData() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations acquire muEdges write lock; endpoints are ensured via
//     AddNode before muEdges is taken, matching core's "validate/create
//     vertices outside the edge lock" ordering.
package digraph

import (
	"sort"

	"github.com/katalvlaran/ngramgraph/symbol"
)

// AddOrUpdateEdge inserts (u,v) with weight w if absent, else replaces the
// existing weight with w. Both endpoints are added to the node set if
// missing. Updates minWeight/maxWeight.
// Complexity: O(1) average.
func (g *Graph) AddOrUpdateEdge(u, v symbol.Symbol, w float64) {
	g.AddNode(u)
	g.AddNode(v)

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	ensureRow(g, u)
	e, exists := g.adjacency[u][v]
	if !exists {
		e = &Edge{From: u, To: v}
		g.adjacency[u][v] = e
		g.edgeCount++
	}
	e.Weight = w
	g.touchExtrema(w)
}

// IncrementEdge adds delta to the weight of (u,v), creating the edge with
// weight delta if it did not already exist. delta defaults to 1 when
// omitted, matching DocumentNGramGraph.addEdgeInc's default w=1.
// Complexity: O(1) average.
func (g *Graph) IncrementEdge(u, v symbol.Symbol, delta ...float64) {
	d := 1.0
	if len(delta) > 0 {
		d = delta[0]
	}

	g.AddNode(u)
	g.AddNode(v)

	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	ensureRow(g, u)
	e, exists := g.adjacency[u][v]
	if !exists {
		e = &Edge{From: u, To: v, Weight: d}
		g.adjacency[u][v] = e
		g.edgeCount++
	} else {
		e.Weight += d
	}
	g.touchExtrema(e.Weight)
}

// touchExtrema refreshes minWeight/maxWeight after an edge weight change.
// Must be called under muEdges write lock.
func (g *Graph) touchExtrema(w float64) {
	if w < g.minWeight {
		g.minWeight = w
	}
	if w > g.maxWeight {
		g.maxWeight = w
	}
}

// GetEdgeWeight returns the weight of (u,v) and true if the edge exists.
// Complexity: O(1) average.
func (g *Graph) GetEdgeWeight(u, v symbol.Symbol) (float64, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	e, ok := g.adjacency[u][v]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// HasEdge reports whether (u,v) exists.
// Complexity: O(1) average.
func (g *Graph) HasEdge(u, v symbol.Symbol) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// NeighborsOut returns the Symbols reachable from u by one directed edge,
// in unspecified order.
// Complexity: O(deg_out(u)).
func (g *Graph) NeighborsOut(u symbol.Symbol) []symbol.Symbol {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	row := g.adjacency[u]
	out := make([]symbol.Symbol, 0, len(row))
	for to := range row {
		out = append(out, to)
	}

	return out
}

// EdgesWithData returns every edge, sorted by (From, To) ascending for
// deterministic iteration (golden tests, reproducible HPG construction).
// Complexity: O(E log E).
func (g *Graph) EdgesWithData() []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	out := make([]*Edge, 0, g.edgeCount)
	for _, row := range g.adjacency {
		for _, e := range row {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the true number of edges, |E(G)|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return g.edgeCount
}

// NumberOfEdges preserves a legacy accessor pitfall from DocumentNGramGraph:
// it returns the NODE count, not the edge count. SS is defined in terms
// of this accessor (spec.md §4.1, §4.5, Open Question 1); VS divides by
// EdgeCount. Callers wanting the true edge count must use EdgeCount.
func (g *Graph) NumberOfEdges() int {
	return g.NodeCount()
}

// MinWeight returns the smallest weight tracked across all edges ever
// assigned (it does not shrink when the minimum edge is removed — it is
// the running extremum per the spec's data model).
func (g *Graph) MinWeight() float64 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return g.minWeight
}

// MaxWeight returns the largest weight tracked across all edges ever
// assigned.
func (g *Graph) MaxWeight() float64 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return g.maxWeight
}
