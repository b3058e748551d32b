// SPDX-License-Identifier: MIT

package adjacency

import "unicode/utf8"

// Rule decides whether two words should be linked by an edge.
// Implementations must be pure and symmetric: Rule(a,b) == Rule(b,a).
type Rule func(a, b string) bool

// Default is the single-edit rule used when no other Rule is configured.
var Default Rule = IsAdjacent

// IsAdjacent reports whether word1 and word2 are exactly one edit apart.
func IsAdjacent(word1, word2 string) bool {
	if word1 == word2 {
		return false
	}

	n1 := utf8.RuneCountInString(word1)
	n2 := utf8.RuneCountInString(word2)

	switch n1 - n2 {
	case 0:
		d, _ := Hamming(word1, word2)
		return d == 1
	case 1:
		return oneDeletion([]rune(word1), []rune(word2))
	case -1:
		return oneDeletion([]rune(word2), []rune(word1))
	default:
		return false
	}
}

// Hamming returns the number of rune positions at which a and b differ.
// ok is false when a and b have different rune lengths.
func Hamming(a, b string) (d int, ok bool) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, false
	}
	for i := range ra {
		if ra[i] != rb[i] {
			d++
		}
	}

	return d, true
}

// oneDeletion reports whether short is long with exactly one rune removed.
// Requires len(long) == len(short)+1.
//
// Single pass: advance both cursors while runes match; on the first mismatch
// skip one rune of long. A second mismatch means more than one edit. A match
// that runs to the end of short leaves the trailing rune of long as the skip.
func oneDeletion(long, short []rune) bool {
	skipped := false
	i, j := 0, 0
	for j < len(short) {
		if long[i] == short[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		i++
	}

	return true
}
