// SPDX-License-Identifier: MIT

// Package processor builds a word-ladder graph from normalized tokens and
// answers shortest-path and shortest-distance queries between words.
//
// A Processor exclusively owns a core.Graph[string] and the
// pathtable.Table[string] precomputed from it:
//
//	p, _ := processor.New(processor.WithLogger(logger))
//	n, err := p.Populate(ctx, []string{"CAT", "RAT", "HAT", "HEAT", "WHEAT", "KIT"})
//	path, ok, err := p.ShortestPath("CAT", "WHEAT")     // [CAT HAT HEAT WHEAT], true, nil
//	dist, ok, err := p.ShortestDistance("CAT", "WHEAT") // 3, true, nil
//	_, ok, err = p.ShortestPath("CAT", "KIT")           // nil, false, nil (unreachable)
//
// Phases
//
//   - Populate adds words cumulatively, links every pair the adjacency rule
//     accepts, and then rebuilds the path table before returning.
//   - RemoveWord mutates the graph and marks the table stale.
//   - Precompute rebuilds the table from scratch and clears the stale mark.
//   - Mutations and Precompute hold the write lock, so a build never overlaps
//     a mutation; queries hold the read lock.
//
// Query results
//
//   - ok == false with a nil error: the pair is unreachable (a normal answer).
//   - ErrNotPrecomputed: no table has ever been built.
//   - ErrStale: the graph changed after the last build.
//   - ErrWordNotFound: an endpoint was not in the graph at build time.
//
// Observability
//
//	Populate and Precompute log through log/slog and emit OpenTelemetry spans;
//	counters and histograms cover words added, build latency, graph size, and
//	query outcomes. Providers default to the otel globals.
package processor
