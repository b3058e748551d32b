// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// walker encapsulates state during DFS.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	res   *Result[V]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component in vertex insertion order and start is ignored;
// otherwise it starts only from start.
// Returns the Result, or the partial Result and an error if aborted by
// context or hook.
func DFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify start
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &Result[V]{
		Order:   make([]V, 0, len(vertices)),
		Depth:   make(map[V]int, len(vertices)),
		Parent:  make(map[V]V, len(vertices)),
		Visited: make(map[V]bool, len(vertices)),
	}
	w := &walker[V]{graph: g, opts: o, res: res}

	// 5. Traverse: forest or single tree
	if o.FullTraversal {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			if err := w.traverse(v, 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits v at the given depth, recursing to neighbors.
func (w *walker[V]) traverse(v V, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil

		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 5. Fetch neighbors once
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: Neighbors(%v): %w", v, err)
	}

	// 6. Explore each unvisited neighbor
	for _, n := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[n] {
			continue
		}
		w.res.Parent[n] = v
		if err = w.traverse(n, depth+1); err != nil {
			return err
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}

	// 8. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
