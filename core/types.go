// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors, and the NewGraph constructor.
// Invariants:
//   - adjacency[v] and index[v] exist iff v is a vertex.
//   - b ∈ index[a] ⇔ a ∈ index[b] (symmetry); a ∉ index[a] (no loops).
//   - adjacency[a] holds every member of index[a] exactly once, in insertion order.
//   - order lists every vertex exactly once, in insertion order.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertex indicates the zero value of the vertex type was supplied.
	ErrEmptyVertex = errors.New("core: vertex is empty")

	// ErrVertexExists indicates AddVertex was called for a vertex already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Graph is an undirected, unweighted adjacency-list graph over comparable vertices.
//
// mu guards every field below it. edgeCount counts undirected edges once.
type Graph[V comparable] struct {
	mu sync.RWMutex

	// Storage
	order     []V                  // vertices in insertion order
	adjacency map[V][]V            // vertex → neighbors, insertion order
	index     map[V]map[V]struct{} // vertex → neighbor set, O(1) membership
	edgeCount int                  // number of undirected edges
}

// GraphOption configures a Graph before first use.
type GraphOption[V comparable] func(g *Graph[V])

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity[V comparable](n int) GraphOption[V] {
	return func(g *Graph[V]) {
		if n <= 0 {
			return
		}
		g.order = make([]V, 0, n)
		g.adjacency = make(map[V][]V, n)
		g.index = make(map[V]map[V]struct{}, n)
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph[V comparable](opts ...GraphOption[V]) *Graph[V] {
	g := &Graph[V]{
		adjacency: make(map[V][]V),
		index:     make(map[V]map[V]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// isZero reports whether v is the zero value of V (the null sentinel).
func isZero[V comparable](v V) bool {
	var zero V
	return v == zero
}
