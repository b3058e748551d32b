// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep copy of the Graph: vertices, neighbor lists, and indexes.
// The clone preserves insertion order and shares no storage with g.
// Complexity: O(V+E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity[V](len(g.order)))
	clone.order = append(clone.order, g.order...)
	clone.edgeCount = g.edgeCount

	for v, nbrs := range g.adjacency {
		cp := make([]V, len(nbrs))
		copy(cp, nbrs)
		clone.adjacency[v] = cp

		set := make(map[V]struct{}, len(nbrs))
		for _, n := range nbrs {
			set[n] = struct{}{}
		}
		clone.index[v] = set
	}

	return clone
}

// Clear removes all vertices and edges.
// Complexity: O(1) (old storage is left to the garbage collector).
func (g *Graph[V]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.adjacency = make(map[V][]V)
	g.index = make(map[V]map[V]struct{})
	g.edgeCount = 0
}
