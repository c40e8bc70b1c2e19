// Package proximity builds digraph.Graphs from n-gram sequences using a
// sliding proximity window. Three weighting variants share one entry
// point, Build, selected via WithPolicy (or the named BuildAsymmetric /
// BuildSymmetric / BuildGaussNorm wrappers):
//
//	Asymmetric: directed edges from each of the preceding D_win+1 n-grams.
//	Symmetric:  bidirectional window, canonically oriented to avoid double-count.
//	GaussNorm:  symmetric connectivity, gaussian-decayed weight by distance.
package proximity
