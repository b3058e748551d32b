// SPDX-License-Identifier: MIT

package processor

import "errors"

// Sentinel errors for processor operations.
var (
	// ErrNotPrecomputed indicates a query arrived before any precomputation ran.
	ErrNotPrecomputed = errors.New("processor: shortest paths not precomputed")

	// ErrStale indicates the graph changed since the last precomputation.
	ErrStale = errors.New("processor: shortest paths are stale")

	// ErrWordNotFound indicates a word that is not a vertex of the graph.
	ErrWordNotFound = errors.New("processor: word not found")

	// ErrOptionViolation indicates an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("processor: invalid option supplied")
)
