// SPDX-License-Identifier: MIT

package processor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName scopes the tracer and meter.
const instrumentationName = "github.com/katalvlaran/wordladder/processor"

// Query outcome labels.
const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeError       = "error"
)

// instruments holds the metrics emitted by one Processor.
type instruments struct {
	wordsAdded      metric.Int64Counter
	precomputeTime  metric.Float64Histogram
	precomputeTotal metric.Int64Counter
	vertices        metric.Int64Gauge
	edges           metric.Int64Gauge
	reachablePairs  metric.Int64Gauge
	queries         metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)
	var (
		in  instruments
		err error
	)

	if in.wordsAdded, err = meter.Int64Counter(
		"wordladder_words_added_total",
		metric.WithDescription("Number of words added to the graph by Populate"),
	); err != nil {
		return nil, err
	}
	if in.precomputeTime, err = meter.Float64Histogram(
		"wordladder_precompute_duration_seconds",
		metric.WithDescription("Duration of shortest-path precomputation"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if in.precomputeTotal, err = meter.Int64Counter(
		"wordladder_precompute_total",
		metric.WithDescription("Number of precomputation runs"),
	); err != nil {
		return nil, err
	}
	if in.vertices, err = meter.Int64Gauge(
		"wordladder_graph_vertices",
		metric.WithDescription("Vertices in the graph at the last precomputation"),
	); err != nil {
		return nil, err
	}
	if in.edges, err = meter.Int64Gauge(
		"wordladder_graph_edges",
		metric.WithDescription("Edges in the graph at the last precomputation"),
	); err != nil {
		return nil, err
	}
	if in.reachablePairs, err = meter.Int64Gauge(
		"wordladder_reachable_pairs",
		metric.WithDescription("Reachable ordered word pairs in the path table"),
	); err != nil {
		return nil, err
	}
	if in.queries, err = meter.Int64Counter(
		"wordladder_queries_total",
		metric.WithDescription("Shortest path and distance queries by outcome"),
	); err != nil {
		return nil, err
	}

	return &in, nil
}

// recordPrecompute records one precomputation run.
func (in *instruments) recordPrecompute(ctx context.Context, d time.Duration, vertices, edges, pairs int, success bool) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	in.precomputeTime.Record(ctx, d.Seconds(), attrs)
	in.precomputeTotal.Add(ctx, 1, attrs)
	if !success {
		return
	}
	in.vertices.Record(ctx, int64(vertices))
	in.edges.Record(ctx, int64(edges))
	in.reachablePairs.Record(ctx, int64(pairs))
}

// recordQuery records one query outcome.
func (in *instruments) recordQuery(ctx context.Context, query, outcome string) {
	in.queries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("query", query),
		attribute.String("outcome", outcome),
	))
}
