// Package gindex implements GraphIndex (spec.md §4.8): an
// approximate-deduplication structure over WeightedDigraphs. Each insert
// either matches an existing representative exactly, merges into a near
// match, strips overlap and keeps scanning, or appends a new entry.
package gindex
