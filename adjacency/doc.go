// SPDX-License-Identifier: MIT

// Package adjacency decides whether two words are one edit apart.
//
// What
//
//	Two words are adjacent iff they differ by exactly one of:
//	  - a substitution (equal length, Hamming distance 1),
//	  - an insertion or deletion (lengths differ by 1 and deleting one rune
//	    from the longer word yields the shorter).
//	Equal words are never adjacent. A length gap of 2 or more short-circuits
//	to false before any rune is compared.
//
// Why
//
//	The predicate runs O(V²) times while a dictionary is populated, so it is a
//	single linear pass (two pointers for the insertion/deletion case) instead
//	of a full edit-distance table.
//
// Comparison is by rune, so "CAFÉ" and "CAFE" are one substitution apart.
//
// Complexity
//
//	Time O(n) for words of length n, Space O(n) for the rune conversion.
package adjacency
