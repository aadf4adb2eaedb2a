// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetWeight/Edge/Edges/EdgeCount/HasEdge.
// Determinism:
//   - Edges() returns edges ordered by Edge.ID (insertion order).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"math"
)

// validWeight reports whether w is a usable filtration value.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// AddEdge creates a new undirected edge u-v with the given weight and
// returns its id.
//
// Steps:
//  1. Validate endpoints (ErrVertexNotFound) and weight (ErrBadWeight).
//  2. Reject loops unless WithLoops (ErrLoopNotAllowed).
//  3. Reject parallel edges unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//  4. Append to the edge catalog and to both incidence lists.
//
// Complexity: O(deg(u)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(u, v int, weight float64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.vertices)
	if u < 0 || u >= n || v < 0 || v >= n {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}
	if !validWeight(weight) {
		return -1, fmt.Errorf("AddEdge(%d,%d) weight=%v: %w", u, v, weight, ErrBadWeight)
	}
	if u == v && !g.allowLoops {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasEdgeLocked(u, v) {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: u, To: v, Weight: weight})
	g.incidence[u] = append(g.incidence[u], eid)
	if u != v {
		g.incidence[v] = append(g.incidence[v], eid)
	}

	return eid, nil
}

// SetWeight replaces the weight of edge eid.
func (g *Graph) SetWeight(eid int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if eid < 0 || eid >= len(g.edges) {
		return fmt.Errorf("SetWeight(%d): %w", eid, ErrEdgeNotFound)
	}
	if !validWeight(weight) {
		return fmt.Errorf("SetWeight(%d) weight=%v: %w", eid, weight, ErrBadWeight)
	}
	g.edges[eid].Weight = weight

	return nil
}

// Edge returns a copy of edge eid.
func (g *Graph) Edge(eid int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if eid < 0 || eid >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", eid, ErrEdgeNotFound)
	}

	return g.edges[eid], nil
}

// Edges returns a copy of all edges ordered by id.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E| (loops and parallel edges included).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge u-v exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.vertices) || v < 0 || v >= len(g.vertices) {
		return false
	}

	return g.hasEdgeLocked(u, v)
}

// hasEdgeLocked scans the incidence list of u. Caller holds mu.
func (g *Graph) hasEdgeLocked(u, v int) bool {
	for _, eid := range g.incidence[u] {
		e := g.edges[eid]
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return true
		}
	}

	return false
}
