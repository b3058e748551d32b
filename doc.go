// Package wordladder links words that are one edit apart and answers
// shortest word-ladder queries between them, from a precomputed table.
//
// 🚀 What is wordladder?
//
//	A thread-safe, in-memory library that brings together:
//		• Core primitives: a generic undirected graph with insertion-ordered neighbors
//		• Adjacency: the single-edit rule (substitute, insert, or delete one letter)
//		• Traversal: generic BFS with hooks and early stop; DFS with connected components
//		• Precomputation: all-pairs shortest paths, one BFS row per word, in parallel
//		• Processing: cumulative population, stale tracking, slog + OpenTelemetry
//
// Under the hood, everything is organized into six subpackages:
//
//	core/       Graph[V] with sentinel errors, RWMutex guarded
//	adjacency/  IsAdjacent, Hamming, pluggable Rule
//	bfs/        BFS[V] with functional options and path reconstruction
//	dfs/        DFS[V] and Components (ladder islands)
//	pathtable/  Table[V], an O(1) keyed source→dest→path snapshot
//	processor/  Processor: Populate, Precompute, ShortestPath, ShortestDistance
//
// Quick ASCII example:
//
//	CAT───HAT───HEAT───WHEAT
//	  \   /
//	   RAT        KIT
//
//	CAT→WHEAT is three edits; KIT is unreachable from every other word.
//
// Runnable demos live in examples/.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
