// Package ngramgraph is an in-memory engine for turning character or
// token sequences into weighted proximity graphs, comparing them, and
// indexing or clustering documents by graph similarity.
//
// It builds on a small set of primitives:
//
//	digraph/    — WeightedDigraph: thread-safe directed weighted graph keyed by Symbol
//	symbol/     — Symbol: an opaque tuple-encoded node key
//	ngram/      — NGramExtractor: windows an atom sequence into overlapping n-grams
//	proximity/  — ProximityGraphBuilder: n-grams to WeightedDigraph, three weighting policies
//	arraygraph/ — ArrayGraph2D: a rectangular symbol matrix to WeightedDigraph via a clamped window
//	ops/        — set-style graph operators: Union, Intersect, InverseIntersection, Delta
//	similarity/ — SS, VS, NVS, ACS, SCS and the multi-level HPGSimilarity
//	gindex/     — GraphIndex: an ordered index of representative graphs by similarity threshold
//	hpg/        — HPG: a flat stack of proximity levels built by repeated patch extraction
//	collector/  — Collector and HPGCollector: representative-graph accumulation over a corpus
//
// Configurable constructors follow the same functional-options shape
// (New(required..., opts ...Option)); arraygraph.Build and
// ngram.NewExtractor take plain arguments only. digraph.Graph and
// gindex.GraphIndex guard their state with their own locks; Collector and
// HPGCollector do not. Every package that can fail on bad input exposes a
// sentinel error checked with errors.Is.
package ngramgraph
