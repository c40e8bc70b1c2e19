// Package digraph is the n-gram graph engine's fundamental data type: a
// weighted directed graph over opaque Symbol nodes (see the sibling
// symbol package), with O(1)-average edge operations and deterministic
// iteration.
//
// Configuration-free by design — unlike core.Graph's GraphOption surface,
// WeightedDigraph has exactly one shape (directed, weighted, no parallel
// edges, self-loops permitted and emitted by a builder only when a symbol
// co-occurs with an equal symbol). Builders
// (proximity, arraygraph) and operators (ops) are the only writers;
// similarity (similarity), indexing (gindex), and collecting (collector)
// are read-only consumers, or construct new graphs via ops.
//
// Core methods:
//
//	AddNode(s)                     // O(1)
//	AddOrUpdateEdge(u, v, w)        // O(1)
//	IncrementEdge(u, v, delta...)   // O(1), delta defaults to 1
//	GetEdgeWeight(u, v) (w, ok)     // O(1)
//	HasEdge(u, v) bool              // O(1)
//	NeighborsOut(u) []Symbol        // O(deg_out(u))
//	EdgesWithData() []*Edge         // O(E log E), sorted by (From,To)
//	NodeCount() / EdgeCount() int   // O(1)
//	NumberOfEdges() int             // legacy: returns NodeCount(), not EdgeCount() — see Open Question 1
//	RemoveIsolatedNodes()           // O(V+E)
//	Equal(other) bool               // O(V+E)
//	Clone() *Graph                  // O(V+E), deep copy
package digraph
