// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wordladder/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep invariant checks (symmetry, no loops) in one auditable place.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wordladder/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustBeUndirectedSimple FAILS the test if g violates symmetry, contains a
// self-loop, or lists a neighbor twice.
//
// Complexity:
//   - Time O(V + E) over Vertices/Neighbors snapshots.
func MustBeUndirectedSimple[V comparable](t *testing.T, g *core.Graph[V]) {
	t.Helper()

	total := 0
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v)
		MustNoError(t, err, "Neighbors(v)")

		seen := make(map[V]bool, len(nbrs))
		for _, n := range nbrs {
			if n == v {
				t.Fatalf("self-loop on %v", v)
			}
			if seen[n] {
				t.Fatalf("parallel edge %v–%v", v, n)
			}
			seen[n] = true

			back, err := g.Neighbors(n)
			MustNoError(t, err, "Neighbors(n)")
			if !contains(back, v) {
				t.Fatalf("asymmetric edge %v→%v", v, n)
			}
			if g.IsAdjacent(v, n) != g.IsAdjacent(n, v) {
				t.Fatalf("IsAdjacent asymmetric for %v,%v", v, n)
			}
		}
		total += len(nbrs)
	}

	MustEqualInt(t, total, 2*g.EdgeCount(), "sum of degrees must be 2·EdgeCount")
}

func contains[V comparable](s []V, x V) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}
