// Package ops implements the algebra over WeightedDigraphs that
// higher-level components (gindex, collector, hpg) are built from:
// weighted Union, Intersect, InverseIntersection, Delta, and their
// left-to-right n-ary reduction.
package ops
