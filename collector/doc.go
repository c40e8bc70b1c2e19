// Package collector implements the two representative-graph accumulation
// policies of spec.md §4.9: Collector, a single running centroid merged
// via weighted Union, and HPGCollector, which accumulates one HPG per
// document and scores appropriateness as the mean per-document HPG
// similarity.
package collector
