// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone keeps vertex and edge ids, so filtrations over the clone break
//     ties exactly like the source.
// Concurrency:
//   - Read lock on the source; no mutation of the source graph.
package core

// CloneEmpty returns a new Graph with identical configuration and vertices
// (labels included), but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked()
}

// cloneEmptyLocked requires g.mu held for reading.
func (g *Graph) cloneEmptyLocked() *Graph {
	clone := &Graph{allowMulti: g.allowMulti, allowLoops: g.allowLoops}
	clone.vertices = make([]Vertex, len(g.vertices))
	copy(clone.vertices, g.vertices)
	clone.incidence = make([][]int, len(g.vertices))

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// incidence lists.
//
// Vertices and edges are copied under one read lock, so the clone is a
// consistent snapshot even while other goroutines add to g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for v, inc := range g.incidence {
		if len(inc) == 0 {
			continue
		}
		clone.incidence[v] = append([]int(nil), inc...)
	}

	return clone
}
