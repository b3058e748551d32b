// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order; removal preserves the
//     relative order of the survivors.
//
// Concurrency:
//   - Mutations hold mu for writing; queries hold mu for reading.

package core

// AddVertex inserts v with an empty neighbor list.
//
// Implementation:
//   - Stage 1: Reject the zero value (ErrEmptyVertex).
//   - Stage 2: Under the write lock, reject duplicates (ErrVertexExists).
//   - Stage 3: Register v in order, adjacency, and index.
//
// Behavior highlights:
//   - A rejected call leaves the graph untouched; VertexCount grows by exactly
//     one on success.
//
// Errors:
//   - ErrEmptyVertex: v is the zero value.
//   - ErrVertexExists: v is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddVertex(v V) error {
	if isZero(v) {
		return ErrEmptyVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[v]; exists {
		return ErrVertexExists
	}

	g.order = append(g.order, v)
	g.adjacency[v] = nil
	g.index[v] = make(map[V]struct{})

	return nil
}

// HasVertex reports whether v exists (zero value ⇒ false).
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	if isZero(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate input and presence.
//   - Stage 2: For each neighbor n of v, drop v from n's list and index.
//   - Stage 3: Delete v's own entries and remove it from the insertion order.
//
// Behavior highlights:
//   - Symmetry is preserved: no neighbor keeps a dangling reference to v.
//
// Errors:
//   - ErrEmptyVertex: v is the zero value.
//   - ErrVertexNotFound: v is absent.
//
// Complexity:
//   - Time O(Σ deg(n) + V) for neighbor list compaction and order fix-up.
func (g *Graph[V]) RemoveVertex(v V) error {
	if isZero(v) {
		return ErrEmptyVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[v]; !exists {
		return ErrVertexNotFound
	}

	var n V
	for _, n = range g.adjacency[v] {
		delete(g.index[n], v)
		g.adjacency[n] = without(g.adjacency[n], v)
		g.edgeCount--
	}

	delete(g.adjacency, v)
	delete(g.index, v)
	g.order = without(g.order, v)

	return nil
}

// Vertices returns all vertices in insertion order.
// The slice is a copy; callers may retain and mutate it.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the current number of vertices.
// Prefer it over len(Vertices()) to avoid the copy.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of neighbors of v.
//
// Errors:
//   - ErrEmptyVertex, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) (int, error) {
	if isZero(v) {
		return 0, ErrEmptyVertex
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.index[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(set), nil
}

// without removes the first occurrence of x from s in place, keeping order.
func without[V comparable](s []V, x V) []V {
	for i := range s {
		if s[i] == x {
			copy(s[i:], s[i+1:])
			var zero V
			s[len(s)-1] = zero // release reference held by the tail slot

			return s[:len(s)-1]
		}
	}

	return s
}
