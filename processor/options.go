// SPDX-License-Identifier: MIT

package processor

import (
	"fmt"
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordladder/adjacency"
)

// Option configures a Processor. Invalid options are recorded and surfaced
// as ErrOptionViolation from New.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	rule           adjacency.Rule
	parallelism    int
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider

	err error
}

func defaultConfig() config {
	return config{
		logger:         slog.New(slog.DiscardHandler),
		rule:           adjacency.Default,
		parallelism:    runtime.GOMAXPROCS(0),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
}

// WithLogger sets the structured logger. nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRule replaces the single-edit adjacency rule. The rule must be symmetric.
func WithRule(r adjacency.Rule) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil adjacency rule", ErrOptionViolation)
			return
		}
		c.rule = r
	}
}

// WithParallelism bounds the number of BFS rows built concurrently.
// 1 builds rows sequentially; n < 1 is invalid.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: parallelism must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		c.parallelism = n
	}
}

// WithTracerProvider sets the provider used for spans. nil keeps the global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the provider used for metrics. nil keeps the global.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}
