// Package similarity implements the graph-comparison measures of
// spec.md §4.5: Size Similarity (SS), Value Similarity (VS), Normalized
// Value Similarity (NVS), the containment similarities ACS/SCS, and the
// weighted multi-level lift HPGSimilarity used to compare two HPG level
// stacks.
package similarity
