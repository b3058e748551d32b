// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules and their sentinel errors.
//   - Anchor insertion-order guarantees for Vertices and Neighbors.
//   - Check symmetry / no-loop / no-parallel invariants after every mutation.

package core_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/wordladder/core"
)

// TestGraph_AddRemoveVertex VERIFIES AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph[string]()

	// Empty vertex is the null sentinel.
	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertex, "AddVertex(empty)")
	MustEqualInt(t, g.VertexCount(), 0, "count after AddVertex(empty)")

	// Valid vertex grows the count by exactly one.
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(A)")
	MustEqualInt(t, g.VertexCount(), 1, "count after AddVertex(A)")

	// Duplicate is rejected and leaves the count unchanged.
	MustErrorIs(t, g.AddVertex(VertexA), core.ErrVertexExists, "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "count after duplicate AddVertex(A)")

	// Remove validations.
	MustErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertex, "RemoveVertex(empty)")
	MustErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound, "RemoveVertex(X missing)")

	MustNoError(t, g.RemoveVertex(VertexA), "RemoveVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexA), false, "HasVertex(A) after RemoveVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexEmpty), false, "HasVertex(empty)")
}

// TestGraph_AddEdgeConstraints VERIFIES AddEdge rejects loops, parallel edges,
// unknown endpoints, and empty vertices without mutating the graph.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph[string]()
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustNoError(t, g.AddVertex(VertexB), "AddVertex(B)")

	MustErrorIs(t, g.AddEdge(VertexA, VertexEmpty), core.ErrEmptyVertex, "AddEdge(A,empty)")
	MustErrorIs(t, g.AddEdge(VertexA, VertexA), core.ErrLoopNotAllowed, "AddEdge(A,A)")
	MustErrorIs(t, g.AddEdge(VertexA, VertexX), core.ErrVertexNotFound, "AddEdge(A,X missing)")
	MustEqualInt(t, g.EdgeCount(), 0, "no edges after rejected inserts")

	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B)")
	MustErrorIs(t, g.AddEdge(VertexA, VertexB), core.ErrMultiEdgeNotAllowed, "AddEdge(A,B) again")
	MustErrorIs(t, g.AddEdge(VertexB, VertexA), core.ErrMultiEdgeNotAllowed, "AddEdge(B,A) mirror")

	MustEqualInt(t, g.EdgeCount(), 1, "one edge after duplicate attempts")
	deg, err := g.Degree(VertexA)
	MustNoError(t, err, "Degree(A)")
	MustEqualInt(t, deg, 1, "Degree(A) must not accumulate parallel entries")
	MustBeUndirectedSimple(t, g)
}

// TestGraph_RemoveEdge VERIFIES edge removal semantics and its sentinels.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph[string]()
	for _, v := range []string{VertexA, VertexB, VertexC} {
		MustNoError(t, g.AddVertex(v), "AddVertex")
	}
	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B)")

	MustErrorIs(t, g.RemoveEdge(VertexA, VertexC), core.ErrEdgeNotFound, "RemoveEdge(A,C) absent")
	MustErrorIs(t, g.RemoveEdge(VertexA, VertexX), core.ErrVertexNotFound, "RemoveEdge(A,X)")
	MustErrorIs(t, g.RemoveEdge(VertexA, VertexA), core.ErrLoopNotAllowed, "RemoveEdge(A,A)")

	// Removal works from either endpoint.
	MustNoError(t, g.RemoveEdge(VertexB, VertexA), "RemoveEdge(B,A)")
	MustEqualBool(t, g.IsAdjacent(VertexA, VertexB), false, "IsAdjacent(A,B) after removal")
	MustEqualBool(t, g.IsAdjacent(VertexB, VertexA), false, "IsAdjacent(B,A) after removal")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after removal")
	MustErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound, "RemoveEdge(A,B) twice")
	MustBeUndirectedSimple(t, g)
}

// TestGraph_RemoveVertexKeepsSymmetry VERIFIES that removing a hub vertex
// strips it from every neighbor list.
func TestGraph_RemoveVertexKeepsSymmetry(t *testing.T) {
	g := core.NewGraph[string]()
	for _, v := range []string{VertexA, VertexB, VertexC, VertexD} {
		MustNoError(t, g.AddVertex(v), "AddVertex")
	}
	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, g.AddEdge(VertexA, VertexC), "AddEdge(A,C)")
	MustNoError(t, g.AddEdge(VertexA, VertexD), "AddEdge(A,D)")
	MustNoError(t, g.AddEdge(VertexC, VertexD), "AddEdge(C,D)")

	MustNoError(t, g.RemoveVertex(VertexA), "RemoveVertex(A)")

	MustEqualInt(t, g.EdgeCount(), 1, "only C–D survives")
	for _, v := range []string{VertexB, VertexC, VertexD} {
		nbrs, err := g.Neighbors(v)
		MustNoError(t, err, "Neighbors")
		if contains(nbrs, VertexA) {
			t.Fatalf("Neighbors(%s) still lists removed vertex A: %v", v, nbrs)
		}
	}
	if got, want := g.Vertices(), []string{VertexB, VertexC, VertexD}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v; want %v", got, want)
	}
	MustBeUndirectedSimple(t, g)
}

// TestGraph_Queries VERIFIES IsAdjacent, Neighbors, and ordering contracts.
func TestGraph_Queries(t *testing.T) {
	g := core.NewGraph[string]()
	for _, v := range []string{VertexC, VertexA, VertexB} {
		MustNoError(t, g.AddVertex(v), "AddVertex")
	}
	MustNoError(t, g.AddEdge(VertexA, VertexC), "AddEdge(A,C)")
	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B)")

	// Vertices preserve insertion order, not lexical order.
	if got, want := g.Vertices(), []string{VertexC, VertexA, VertexB}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Vertices() = %v; want %v", got, want)
	}
	// Neighbors preserve edge insertion order.
	nbrs, err := g.Neighbors(VertexA)
	MustNoError(t, err, "Neighbors(A)")
	if want := []string{VertexC, VertexB}; !reflect.DeepEqual(nbrs, want) {
		t.Fatalf("Neighbors(A) = %v; want %v", nbrs, want)
	}

	// Absent-signal for unknown or empty vertices.
	_, err = g.Neighbors(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(X)")
	_, err = g.Neighbors(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertex, "Neighbors(empty)")

	MustEqualBool(t, g.IsAdjacent(VertexA, VertexA), false, "IsAdjacent(A,A)")
	MustEqualBool(t, g.IsAdjacent(VertexA, VertexX), false, "IsAdjacent(A,X)")
	MustEqualBool(t, g.IsAdjacent(VertexB, VertexC), false, "IsAdjacent(B,C)")
	MustEqualBool(t, g.IsAdjacent(VertexC, VertexA), true, "IsAdjacent(C,A)")

	// Returned slices never alias storage.
	nbrs[0] = VertexX
	again, _ := g.Neighbors(VertexA)
	if again[0] != VertexC {
		t.Fatalf("Neighbors() aliases internal storage: %v", again)
	}

	adj := g.AdjacencyList()
	MustEqualInt(t, len(adj), 3, "AdjacencyList size")
	MustEqualInt(t, len(adj[VertexB]), 1, "AdjacencyList[B] size")
}

// TestGraph_CloneAndClear VERIFIES Clone independence and Clear reset.
func TestGraph_CloneAndClear(t *testing.T) {
	g := core.NewGraph(core.WithCapacity[string](4))
	for _, v := range []string{VertexA, VertexB, VertexC} {
		MustNoError(t, g.AddVertex(v), "AddVertex")
	}
	MustNoError(t, g.AddEdge(VertexA, VertexB), "AddEdge(A,B)")
	MustNoError(t, g.AddEdge(VertexB, VertexC), "AddEdge(B,C)")

	clone := g.Clone()
	if !reflect.DeepEqual(clone.Vertices(), g.Vertices()) {
		t.Fatalf("clone vertices %v differ from %v", clone.Vertices(), g.Vertices())
	}
	if !reflect.DeepEqual(clone.AdjacencyList(), g.AdjacencyList()) {
		t.Fatalf("clone adjacency differs")
	}
	MustEqualInt(t, clone.EdgeCount(), g.EdgeCount(), "clone EdgeCount")

	// Mutating the clone must not affect the source.
	MustNoError(t, clone.RemoveEdge(VertexA, VertexB), "clone.RemoveEdge(A,B)")
	MustEqualBool(t, g.IsAdjacent(VertexA, VertexB), true, "source keeps A–B")
	MustBeUndirectedSimple(t, clone)

	g.Clear()
	MustEqualInt(t, g.VertexCount(), 0, "VertexCount after Clear")
	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after Clear")
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) after Clear")
}

// TestGraph_IntVertices VERIFIES the container is generic over comparable types
// and that the zero value is the null sentinel.
func TestGraph_IntVertices(t *testing.T) {
	g := core.NewGraph[int]()
	MustErrorIs(t, g.AddVertex(0), core.ErrEmptyVertex, "AddVertex(0)")
	MustNoError(t, g.AddVertex(1), "AddVertex(1)")
	MustNoError(t, g.AddVertex(2), "AddVertex(2)")
	MustNoError(t, g.AddEdge(1, 2), "AddEdge(1,2)")
	MustEqualBool(t, g.IsAdjacent(2, 1), true, "IsAdjacent(2,1)")
	MustBeUndirectedSimple(t, g)
}
