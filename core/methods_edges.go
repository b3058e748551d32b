// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & counts: AddEdge/RemoveEdge/EdgeCount.
// Concurrency:
//   - Mutations under mu write lock, reads under mu read lock.
// Policy:
//   - Undirected only: every edge is mirrored in both endpoints' lists.
//   - Both endpoints must already exist; AddEdge never auto-creates vertices.

package core

// AddEdge links a and b with one undirected edge.
//
// Steps:
//  1. Reject zero values (ErrEmptyVertex) and a == b (ErrLoopNotAllowed).
//  2. Under the write lock, require both endpoints (ErrVertexNotFound).
//  3. Reject an existing edge (ErrMultiEdgeNotAllowed).
//  4. Append b to a's list and a to b's list; update both indexes.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(a, b V) error {
	if isZero(a) || isZero(b) {
		return ErrEmptyVertex
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return ErrVertexNotFound
	}
	if _, dup := ia[b]; dup {
		return ErrMultiEdgeNotAllowed
	}

	ia[b] = struct{}{}
	ib[a] = struct{}{}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge between a and b.
//
// Errors:
//   - ErrEmptyVertex, ErrLoopNotAllowed (a == b), ErrVertexNotFound,
//     ErrEdgeNotFound when the pair is not linked in both directions.
//
// Complexity: O(deg(a)+deg(b)) for list compaction.
func (g *Graph[V]) RemoveEdge(a, b V) error {
	if isZero(a) || isZero(b) {
		return ErrEmptyVertex
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia, okA := g.index[a]
	ib, okB := g.index[b]
	if !okA || !okB {
		return ErrVertexNotFound
	}
	_, ab := ia[b]
	_, ba := ib[a]
	if !ab || !ba {
		return ErrEdgeNotFound
	}

	delete(ia, b)
	delete(ib, a)
	g.adjacency[a] = without(g.adjacency[a], b)
	g.adjacency[b] = without(g.adjacency[b], a)
	g.edgeCount--

	return nil
}

// EdgeCount returns the number of undirected edges (each counted once).
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
