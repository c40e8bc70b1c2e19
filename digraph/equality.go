// File: equality.go
// Role: Structural equality modulo node identity — same node set, same
// edge set, equal weights per corresponding edge (spec.md §3).
package digraph

// Equal reports whether g and other have identical node sets, identical
// edge sets, and identical weights on every corresponding edge. Weight
// comparison is exact (no epsilon): builders and operators never round,
// so bit-identical construction paths produce bit-identical weights.
// Complexity: O(V+E).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}

	gNodes := g.Nodes()
	if len(gNodes) != other.NodeCount() {
		return false
	}
	for _, s := range gNodes {
		if !other.HasNode(s) {
			return false
		}
	}

	gEdges := g.EdgesWithData()
	if len(gEdges) != other.EdgeCount() {
		return false
	}
	for _, e := range gEdges {
		ow, ok := other.GetEdgeWeight(e.From, e.To)
		if !ok || ow != e.Weight {
			return false
		}
	}

	return true
}
