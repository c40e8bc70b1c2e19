// Package ngram is the n-gram extraction stage: atoms in, Symbol tuples
// out, one per position 0..L-n. See Extractor for the restartable
// iterator and ExtractAll for the one-shot convenience form.
package ngram
