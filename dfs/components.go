// SPDX-License-Identifier: MIT

package dfs

import (
	"context"

	"github.com/katalvlaran/wordladder/core"
)

// Components partitions the vertices of g into connected components.
//
// Components are ordered by their first vertex in insertion order; each
// component lists its vertices in discovery (pre-order) order. Every vertex
// appears in exactly one component; an isolated vertex forms its own.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ctx.Err() if cancelled mid-traversal.
//
// Complexity: O(V+E).
func Components[V comparable](ctx context.Context, g *core.Graph[V]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var (
		comps [][]V
		zero  V
	)
	_, err := DFS(g, zero,
		WithContext[V](ctx),
		WithFullTraversal[V](),
		WithOnVisit(func(v V, depth int) error {
			if depth == 0 {
				comps = append(comps, nil)
			}
			last := len(comps) - 1
			comps[last] = append(comps[last], v)

			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return comps, nil
}
