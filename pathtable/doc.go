// SPDX-License-Identifier: MIT

// Package pathtable precomputes all-pairs shortest paths over an unweighted
// core.Graph and serves them by direct keyed lookup.
//
// What
//
//   - Build runs exactly one breadth-first search per source vertex. Each
//     search runs to exhaustion, so a single O(V+E) pass yields the whole row
//     (shortest paths from that source to every reachable destination).
//   - Paths are reconstructed by walking predecessor links from each reached
//     destination back to the source and reversing.
//   - Destinations never reached are absent from the row (unreachable).
//   - Queries are O(1) map lookups keyed by (source, destination); no scan.
//
// Why BFS per source
//
//	Edges are unweighted, so BFS gives exact shortest paths. V runs cost
//	O(V·(V+E)) in total, versus O(V³) for Floyd–Warshall or repeated
//	Dijkstra per query.
//
// Concurrency
//
//	Rows are independent: each worker only reads the graph and writes its own
//	row slot. Build fans rows out through an errgroup bounded by
//	WithParallelism (default GOMAXPROCS). The graph must not be mutated while
//	Build runs; a finished Table is immutable and safe for concurrent reads.
//
// Lifecycle
//
//	A Table is a snapshot of the graph at Build time. Mutating the graph
//	afterwards does not update it; build a new one instead.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an Option is invalid.
//   - ErrVertexNotFound   from Lookup when an endpoint was not in the graph at build time.
//   - ctx.Err()           if the build is cancelled.
package pathtable
