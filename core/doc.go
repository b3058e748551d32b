// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, generic, undirected and unweighted
// in-memory Graph with a minimal, composable API surface.
//
// The Graph G = (V,E) is keyed by any comparable vertex type:
//
//   - Vertices are values of V; the zero value of V is the null sentinel and is
//     never stored (for word graphs this is the empty string).
//   - Every vertex owns an insertion-ordered neighbor list plus an O(1)
//     membership index, so adjacency checks and duplicate-edge rejection are
//     constant time while iteration order stays reproducible.
//   - Edges are undirected: AddEdge(a,b) mirrors b into a's list and a into b's.
//   - No self-loops, no parallel edges. A repeated AddEdge(a,b) is rejected
//     with ErrMultiEdgeNotAllowed instead of silently accumulating entries.
//   - A single sync.RWMutex guards the catalog; all methods are safe for
//     concurrent use, and read-only algorithms (BFS) may run in parallel.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) error               // O(1)
//	HasVertex(v V) bool                // O(1)
//	RemoveVertex(v V) error            // O(Σ deg(n)) over v's neighbors n, plus O(V) order fix-up
//
//	// Edge lifecycle
//	AddEdge(a, b V) error              // O(1)
//	RemoveEdge(a, b V) error           // O(deg(a)+deg(b))
//	IsAdjacent(a, b V) bool            // O(1), symmetric check
//
//	// Query
//	Neighbors(v V) ([]V, error)        // O(deg(v)), insertion order
//	Vertices() []V                     // O(V), insertion order
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//	Degree(v V) (int, error)           // O(1)
//
//	// Maintenance
//	Clone() *Graph[V]                  // O(V+E) deep copy
//	Clear()                            // O(1)
//
// Errors:
//
//	ErrEmptyVertex         – zero-value vertex
//	ErrVertexExists        – AddVertex on a present vertex (no-op)
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – RemoveEdge on a missing edge
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – AddEdge on an existing edge
package core
