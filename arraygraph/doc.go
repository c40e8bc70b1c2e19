// Package arraygraph is the 2D counterpart of proximity: it builds a
// digraph.Graph over a rectangular symbol matrix by visiting cells at a
// stride and connecting each to every neighbor within a clamped square
// window.
package arraygraph
