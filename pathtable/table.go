// SPDX-License-Identifier: MIT

package pathtable

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

// Table is an immutable all-pairs shortest-path snapshot.
//
// rows[source][dest] is the shortest path source→dest, both endpoints
// included; an absent dest means unreachable. Every vertex present at build
// time has a row, and every row holds at least rows[v][v] == [v].
type Table[V comparable] struct {
	order []V
	rows  map[V]map[V][]V
	pairs int
}

// Build computes the full table for g with one BFS per source vertex.
//
// Implementation:
//   - Stage 1: Validate inputs and options; snapshot the vertex order.
//   - Stage 2: Fan rows out through an errgroup bounded by Parallelism. Each
//     worker runs an exhaustive BFS from its source and writes only rows[i].
//   - Stage 3: Assemble the keyed table once every row succeeded.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ctx.Err(), or a wrapped bfs error.
//
// Complexity:
//   - Time O(V·(V+E)) plus path materialization, Space O(Σ path lengths).
func Build[V comparable](ctx context.Context, g *core.Graph[V], opts ...Option) (*Table[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	rows := make([]map[V][]V, len(vertices))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Parallelism)
	for i, src := range vertices {
		eg.Go(func() error {
			row, err := buildRow(egCtx, g, src)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	t := &Table[V]{
		order: vertices,
		rows:  make(map[V]map[V][]V, len(vertices)),
	}
	for i, src := range vertices {
		t.rows[src] = rows[i]
		t.pairs += len(rows[i])
	}

	return t, nil
}

// buildRow runs one exhaustive BFS from src and materializes every reached path.
func buildRow[V comparable](ctx context.Context, g *core.Graph[V], src V) (map[V][]V, error) {
	res, err := bfs.BFS(g, src, bfs.WithContext[V](ctx))
	if err != nil {
		return nil, fmt.Errorf("pathtable: row %v: %w", src, err)
	}

	row := make(map[V][]V, len(res.Order))
	for _, dest := range res.Order {
		path, err := res.PathTo(dest)
		if err != nil {
			return nil, fmt.Errorf("pathtable: row %v: %w", src, err)
		}
		row[dest] = path
	}

	return row, nil
}

// Path returns a copy of the shortest path a→b.
// ok is false when b is unreachable from a or either vertex is unknown.
// Complexity: O(1) lookup + O(len(path)) copy.
func (t *Table[V]) Path(a, b V) ([]V, bool) {
	p, ok := t.rows[a][b]
	if !ok {
		return nil, false
	}

	return slices.Clone(p), true
}

// Distance returns the number of edges on the shortest path a→b.
// ok is false when b is unreachable from a or either vertex is unknown.
// Complexity: O(1).
func (t *Table[V]) Distance(a, b V) (int, bool) {
	p, ok := t.rows[a][b]
	if !ok {
		return 0, false
	}

	return len(p) - 1, true
}

// Lookup returns the full entry for (a, b), distinguishing unknown vertices
// (ErrVertexNotFound) from unreachable pairs (nil error, Entry.Reachable()==false).
func (t *Table[V]) Lookup(a, b V) (Entry[V], error) {
	row, ok := t.rows[a]
	if !ok {
		return Entry[V]{}, fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	if _, ok = t.rows[b]; !ok {
		return Entry[V]{}, fmt.Errorf("%w: %v", ErrVertexNotFound, b)
	}

	return Entry[V]{Source: a, Dest: b, Path: slices.Clone(row[b])}, nil
}

// Has reports whether v was a vertex when the table was built.
func (t *Table[V]) Has(v V) bool {
	_, ok := t.rows[v]
	return ok
}

// Len returns the number of rows (vertices at build time).
func (t *Table[V]) Len() int { return len(t.order) }

// Pairs returns the number of reachable ordered pairs, including (v, v).
func (t *Table[V]) Pairs() int { return t.pairs }

// Sources returns the row keys in the graph's vertex order at build time.
func (t *Table[V]) Sources() []V { return slices.Clone(t.order) }

// ReachableCount returns how many destinations (including a itself) are
// reachable from a; 0 if a is unknown.
func (t *Table[V]) ReachableCount(a V) int { return len(t.rows[a]) }

// Equal reports whether t and other hold identical rows.
func (t *Table[V]) Equal(other *Table[V]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.rows) != len(other.rows) || t.pairs != other.pairs {
		return false
	}
	for src, row := range t.rows {
		orow, ok := other.rows[src]
		if !ok || len(orow) != len(row) {
			return false
		}
		for dest, p := range row {
			if op, ok := orow[dest]; !ok || !slices.Equal(p, op) {
				return false
			}
		}
	}

	return true
}
