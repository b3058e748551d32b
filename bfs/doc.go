// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree (start has none)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once a target is dequeued (WithTarget); without a target the
//     search runs until the queue is exhausted, so one pass yields shortest
//     paths to every reachable vertex.
//
// Determinism
//
//	core.Graph returns neighbors in edge insertion order and BFS enqueues them
//	in that order, so the visit sequence and parent links are reproducible
//	for a fixed graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex enqueued at most once, each edge scanned twice)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, "CAT")
//	path, err := res.PathTo("WHEAT") // [CAT HAT HEAT WHEAT]
//
//	// Single destination with early stop and cancellation:
//	res, err := bfs.BFS(g, "CAT",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithTarget("WHEAT"),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails mid-search.
//   - ErrNoPath               from Result.PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
