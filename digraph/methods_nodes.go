// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/NodeCount/RemoveIsolatedNodes.
package digraph

import "github.com/katalvlaran/ngramgraph/symbol"

// AddNode inserts s into the node set if absent. It is idempotent.
// Complexity: O(1) average.
func (g *Graph) AddNode(s symbol.Symbol) {
	g.muNodes.Lock()
	_, exists := g.nodes[s]
	if !exists {
		g.nodes[s] = struct{}{}
	}
	g.muNodes.Unlock()
	if exists {
		return
	}

	g.muEdges.Lock()
	ensureRow(g, s)
	g.muEdges.Unlock()
}

// HasNode reports whether s is in the node set.
// Complexity: O(1) average.
func (g *Graph) HasNode(s symbol.Symbol) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[s]

	return ok
}

// NodeCount returns |N(G)|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// Nodes returns the node set as a slice, in unspecified order. Callers
// needing determinism should sort the result (Symbol has a natural string
// order).
// Complexity: O(V).
func (g *Graph) Nodes() []symbol.Symbol {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	out := make([]symbol.Symbol, 0, len(g.nodes))
	for s := range g.nodes {
		out = append(out, s)
	}

	return out
}

// RemoveIsolatedNodes drops every node with no incoming or outgoing edge.
// Complexity: O(V+E).
func (g *Graph) RemoveIsolatedNodes() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	indeg := make(map[symbol.Symbol]int, len(g.nodes))
	for _, row := range g.adjacency {
		for to := range row {
			indeg[to]++
		}
	}
	for s := range g.nodes {
		outdeg := len(g.adjacency[s])
		if outdeg == 0 && indeg[s] == 0 {
			delete(g.nodes, s)
			delete(g.adjacency, s)
		}
	}
}
