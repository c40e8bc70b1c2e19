// File: methods_clone.go
// Role: Deep-copying a Graph for operators' deep_copy=true path (spec.md §4.4, §9).
package digraph

// Clone returns a deep copy: a fresh node set, adjacency, and edge
// extrema, sharing no mutable state with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	clone := New()
	for _, s := range g.Nodes() {
		clone.AddNode(s)
	}
	for _, e := range g.EdgesWithData() {
		clone.AddOrUpdateEdge(e.From, e.To, e.Weight)
	}

	return clone
}
