// SPDX-License-Identifier: MIT

package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/pathtable"
)

// Processor owns a word graph and its precomputed shortest-path table.
//
// The zero value is not usable; construct with New.
type Processor struct {
	mu    sync.RWMutex
	graph *core.Graph[string]
	table *pathtable.Table[string] // nil until the first Precompute
	dirty bool                     // graph mutated after table was built

	cfg    config
	logger *slog.Logger
	tracer trace.Tracer
	inst   *instruments
}

// New returns an empty Processor configured by opts.
//
// Errors:
//   - ErrOptionViolation when an option is invalid.
//   - An instrument registration error from the meter provider.
func New(opts ...Option) (*Processor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	inst, err := newInstruments(cfg.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("processor: register metrics: %w", err)
	}

	return &Processor{
		graph:  core.NewGraph[string](),
		cfg:    cfg,
		logger: cfg.logger.With(slog.String("component", "wordladder")),
		tracer: cfg.tracerProvider.Tracer(instrumentationName),
		inst:   inst,
	}, nil
}

// Populate adds tokens to the graph in order and links each new word to every
// existing word the adjacency rule accepts. Empty and duplicate tokens are
// skipped. Calls are cumulative. Before returning, Populate rebuilds the path
// table so queries reflect the new words.
//
// It returns the number of newly added words. On cancellation the words added
// so far are kept, the table is left stale, and ctx.Err() is returned.
//
// Complexity: O(T·V) rule evaluations plus one Precompute.
func (p *Processor) Populate(ctx context.Context, tokens []string) (int, error) {
	ctx, span := p.tracer.Start(ctx, "processor.Populate",
		trace.WithAttributes(attribute.Int("tokens.count", len(tokens))),
	)
	defer span.End()

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	var added, skipped, linked int
	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			p.logger.Debug("populate cancelled",
				slog.Int("added", added),
				slog.Int("remaining", len(tokens)-added-skipped),
			)
			p.inst.wordsAdded.Add(ctx, int64(added))
			span.SetAttributes(attribute.Bool("cancelled", true), attribute.Int("words.added", added))
			span.SetStatus(codes.Error, "cancelled")
			return added, err
		}

		existing := p.graph.Vertices()
		if err := p.graph.AddVertex(tok); err != nil {
			// ErrEmptyVertex or ErrVertexExists
			p.logger.Debug("token skipped", slog.String("token", tok), slog.String("reason", err.Error()))
			skipped++
			continue
		}
		added++
		p.dirty = true

		for _, w := range existing {
			if !p.cfg.rule(tok, w) {
				continue
			}
			if err := p.graph.AddEdge(tok, w); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "add edge")
				return added, fmt.Errorf("processor: link %q-%q: %w", tok, w, err)
			}
			linked++
		}
	}

	p.inst.wordsAdded.Add(ctx, int64(added))
	span.SetAttributes(
		attribute.Int("words.added", added),
		attribute.Int("words.skipped", skipped),
		attribute.Int("edges.added", linked),
	)
	p.logger.Info("populate complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("added", added),
		slog.Int("skipped", skipped),
		slog.Int("edges_added", linked),
		slog.Duration("elapsed", time.Since(start)),
	)

	if p.dirty || p.table == nil {
		if err := p.precomputeLocked(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "precompute")
			return added, err
		}
	}

	return added, nil
}

// RemoveWord deletes word and its edges. The path table becomes stale until
// the next Precompute.
func (p *Processor) RemoveWord(word string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.graph.RemoveVertex(word); err != nil {
		if errors.Is(err, core.ErrVertexNotFound) || errors.Is(err, core.ErrEmptyVertex) {
			return fmt.Errorf("%w: %q", ErrWordNotFound, word)
		}
		return err
	}
	p.dirty = true
	p.logger.Debug("word removed", slog.String("word", word))

	return nil
}

// Precompute rebuilds the shortest-path table from the current graph and
// clears the stale mark. On failure the previous table is kept.
func (p *Processor) Precompute(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.precomputeLocked(ctx)
}

// precomputeLocked requires p.mu held for writing.
func (p *Processor) precomputeLocked(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "processor.Precompute",
		trace.WithAttributes(
			attribute.Int("graph.vertices", p.graph.VertexCount()),
			attribute.Int("graph.edges", p.graph.EdgeCount()),
			attribute.Int("parallelism", p.cfg.parallelism),
		),
	)
	defer span.End()

	start := time.Now()
	tbl, err := pathtable.Build(ctx, p.graph, pathtable.WithParallelism(p.cfg.parallelism))
	elapsed := time.Since(start)
	if err != nil {
		p.inst.recordPrecompute(ctx, elapsed, 0, 0, 0, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "build path table")
		p.logger.Warn("precompute failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
		)
		return fmt.Errorf("processor: precompute: %w", err)
	}

	p.table = tbl
	p.dirty = false

	vertices, edges := p.graph.VertexCount(), p.graph.EdgeCount()
	p.inst.recordPrecompute(ctx, elapsed, vertices, edges, tbl.Pairs(), true)
	span.SetAttributes(attribute.Int("pairs.reachable", tbl.Pairs()))
	p.logger.Info("precompute complete",
		slog.Int("vertices", vertices),
		slog.Int("edges", edges),
		slog.Int("reachable_pairs", tbl.Pairs()),
		slog.Duration("elapsed", elapsed),
	)

	return nil
}

// ShortestPath returns a shortest word ladder from a to b, both endpoints
// included. ok is false when b is unreachable from a.
//
// Errors:
//   - ErrNotPrecomputed, ErrStale, or ErrWordNotFound.
func (p *Processor) ShortestPath(a, b string) (path []string, ok bool, err error) {
	e, err := p.lookup("shortest_path", a, b)
	if err != nil {
		return nil, false, err
	}

	return e.Path, e.Reachable(), nil
}

// ShortestDistance returns the number of edges on a shortest ladder from a to
// b. ok is false when b is unreachable from a.
//
// Errors:
//   - ErrNotPrecomputed, ErrStale, or ErrWordNotFound.
func (p *Processor) ShortestDistance(a, b string) (dist int, ok bool, err error) {
	e, err := p.lookup("shortest_distance", a, b)
	if err != nil {
		return 0, false, err
	}
	dist, ok = e.Distance()

	return dist, ok, nil
}

func (p *Processor) lookup(query, a, b string) (pathtable.Entry[string], error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ctx := context.Background()
	switch {
	case p.table == nil:
		p.inst.recordQuery(ctx, query, outcomeError)
		return pathtable.Entry[string]{}, ErrNotPrecomputed
	case p.dirty:
		p.inst.recordQuery(ctx, query, outcomeError)
		return pathtable.Entry[string]{}, ErrStale
	}

	e, err := p.table.Lookup(a, b)
	if err != nil {
		p.inst.recordQuery(ctx, query, outcomeError)
		missing := a
		if p.table.Has(a) {
			missing = b
		}
		return pathtable.Entry[string]{}, fmt.Errorf("%w: %q", ErrWordNotFound, missing)
	}
	if e.Reachable() {
		p.inst.recordQuery(ctx, query, outcomeFound)
	} else {
		p.inst.recordQuery(ctx, query, outcomeUnreachable)
	}

	return e, nil
}

// VertexCount returns the number of distinct words in the graph.
func (p *Processor) VertexCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.VertexCount()
}

// EdgeCount returns the number of adjacent word pairs.
func (p *Processor) EdgeCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.EdgeCount()
}

// Words returns the words in insertion order.
func (p *Processor) Words() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.Vertices()
}

// Neighbors returns the words one edit away from word, in the order they were linked.
func (p *Processor) Neighbors(word string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	nbrs, err := p.graph.Neighbors(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, word)
	}

	return nbrs, nil
}

// IsAdjacent reports whether a and b are linked in the graph.
func (p *Processor) IsAdjacent(a, b string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.IsAdjacent(a, b)
}

// Components returns the ladder islands of the current graph: groups of
// words mutually reachable by single edits. Islands are ordered by their
// first word, and words within an island in discovery order. Unlike the
// path queries, Components reads the live graph and never returns ErrStale.
func (p *Processor) Components(ctx context.Context) ([][]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	comps, err := dfs.Components(ctx, p.graph)
	if err != nil {
		return nil, fmt.Errorf("processor: components: %w", err)
	}

	return comps, nil
}

// Precomputed reports whether a path table has been built at least once.
func (p *Processor) Precomputed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.table != nil
}

// Stale reports whether the graph changed after the last Precompute.
func (p *Processor) Stale() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.table != nil && p.dirty
}
