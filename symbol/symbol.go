// Package symbol defines the opaque, hashable token shared by every
// n-gram graph package: a Symbol is the node identity of a WeightedDigraph.
//
// A Symbol is built from an ordered tuple of atoms (runes, words, matrix
// cells — whatever the caller's pre-tokenization produced). The atoms of
// a multi-atom tuple are joined with a private separator, so a text
// n-gram's Symbol is its characters separated by that separator rather
// than the plain substring; like DocumentNGramGraph's tuple(a) node keys,
// two tuples are equal only if their atoms are. A single-atom tuple is
// the atom itself. Higher HPG levels assign dense integer symbols through
// FromIndex, which zero-pads so that lexicographic Symbol order agrees
// with numeric order — required by the symmetric proximity builder's
// canonical orientation rule (Symbol's string order) when it is applied
// to a higher HPG level.
package symbol

import "strings"

// unitSep is a control character vanishingly unlikely to appear in
// tokenized input; it separates the atoms of a tuple inside a Symbol.
const unitSep = "\x1f"

// indexWidth bounds the decimal width zero-padded by FromIndex. 2^63-1
// never exceeds 19 digits, so 20 is a safe fixed width.
const indexWidth = 20

// Symbol is an opaque, hashable, totally-ordered (via Go's native string
// order) token — a graph node identity.
type Symbol string

// Join builds a Symbol from an ordered sequence of atoms. A single-atom
// sequence yields a Symbol equal to that atom (the singleton-tuple case
// used by ArrayGraph2D); a multi-atom sequence joins with a private
// separator so no legitimate atom boundary is ever mistaken for another.
func Join(atoms ...string) Symbol {
	if len(atoms) == 1 {
		return Symbol(atoms[0])
	}

	return Symbol(strings.Join(atoms, unitSep))
}

// Atoms splits a Symbol back into its constituent atoms. It is the
// inverse of Join and is mainly useful for debugging/printing.
func Atoms(s Symbol) []string {
	return strings.Split(string(s), unitSep)
}

// FromIndex renders a dense non-negative integer (a GraphIndex slot) as a
// Symbol, zero-padded so that string order matches numeric order.
func FromIndex(i int) Symbol {
	// Manual zero-pad avoids pulling in fmt for a hot HPG-construction path.
	digits := make([]byte, 0, indexWidth)
	if i == 0 {
		digits = append(digits, '0')
	}
	n := i
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for len(digits) < indexWidth {
		digits = append(digits, '0')
	}
	// digits were appended least-significant-first; reverse in place.
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return Symbol(digits)
}

// NullAtom is the reserved padding atom used by ngram.Extractor when
// right-padding is enabled. It is wrapped in a second control character
// (\x1e) that ordinary tokenized input is as unlikely to contain as the
// separator, and it does not contain the separator itself, so Atoms
// recovers it intact from a joined Symbol.
const NullAtom = "\x1e<PAD>\x1e"
