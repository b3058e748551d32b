// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (IsAdjacent, Neighbors, AdjacencyList).
// Determinism:
//   - Neighbors() and AdjacencyList() preserve edge insertion order.
// Concurrency:
//   - Read operations hold mu for reading; returned slices never alias storage.

package core

// IsAdjacent reports whether a and b are linked by an edge.
//
// The check is symmetric: it requires b in a's index AND a in b's index, so a
// half-linked pair (which the mutators never produce) is reported as absent.
//
// Returns false for zero values, a == b, or unknown vertices.
// Complexity: O(1).
func (g *Graph[V]) IsAdjacent(a, b V) bool {
	if isZero(a) || isZero(b) || a == b {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	_, ab := ia[b]
	_, ba := ib[a]

	return ab && ba
}

// Neighbors returns a copy of v's neighbor list in edge insertion order.
//
// Errors:
//   - ErrEmptyVertex: v is the zero value.
//   - ErrVertexNotFound: v is absent (the absent signal).
//
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	if isZero(v) {
		return nil, ErrEmptyVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[v]; !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adjacency[v]
	out := make([]V, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → neighbors map.
// Inner slices are independent copies in insertion order.
// Complexity: O(V+E).
func (g *Graph[V]) AdjacencyList() map[V][]V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[V][]V, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		cp := make([]V, len(nbrs))
		copy(cp, nbrs)
		out[v] = cp
	}

	return out
}
