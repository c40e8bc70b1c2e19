// Package hpg implements the Hierarchical Proximity Graph construction
// (spec.md §4.7): level 0 is built directly on the input; each
// subsequent level abstracts windowed neighborhoods of the level below
// into symbols via a per-level GraphIndex, then builds a graph over the
// resulting symbol matrix. The result is a flat, non-cyclic vector of
// levels rather than the linked parent/child structure of the original
// implementation.
package hpg
