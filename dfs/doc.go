// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search and connected-component
// discovery on a core.Graph[V].
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every vertex (WithFullTraversal)
//   - Components: partitions the vertices into connected components
//     ("ladder islands"). Two words are mutually reachable iff they share
//     a component.
//
// Key Types:
//
//   - Option[V]: functional options for DFS behavior
//   - Options[V]: holds Context, hooks, MaxDepth, FilterNeighbor
//   - Result[V]: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
