// SPDX-License-Identifier: MIT

package pathtable

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Build.
	ErrGraphNil = errors.New("pathtable: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathtable: invalid option supplied")

	// ErrVertexNotFound is returned by Lookup when an endpoint was not a vertex at build time.
	ErrVertexNotFound = errors.New("pathtable: vertex not found")
)

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Parallelism caps the number of rows computed concurrently (>= 1).
	Parallelism int

	err error
}

// DefaultOptions returns Options with Parallelism = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Parallelism: runtime.GOMAXPROCS(0)}
}

// WithParallelism bounds concurrent row builds.
//
//	n >= 1: at most n rows in flight (1 = sequential)
//	n < 1:  invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallelism must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// Entry is one (source, destination) record of the table.
// Path is nil when Dest is unreachable from Source.
type Entry[V comparable] struct {
	Source V
	Dest   V
	Path   []V
}

// Reachable reports whether the entry carries a path.
func (e Entry[V]) Reachable() bool { return e.Path != nil }

// Distance returns the path length in edges; ok is false when unreachable.
func (e Entry[V]) Distance() (int, bool) {
	if e.Path == nil {
		return 0, false
	}

	return len(e.Path) - 1, true
}
