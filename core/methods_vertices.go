// File: methods_vertices.go
// Role: Vertex lifecycle, labels and adjacency queries.
//
// Determinism:
//   - Vertex ids are assigned sequentially and never reused.
//   - Neighbors() follows edge insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

import "fmt"

// AddVertex appends a vertex with the given label and returns its id.
// An empty label leaves the vertex unlabelled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Label: label})
	g.incidence = append(g.incidence, nil)

	return id
}

// AddVertices appends n unlabelled vertices and returns the id of the first.
// For n ≤ 0 nothing is added and the current vertex count is returned.
func (g *Graph) AddVertices(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.vertices)
	for i := 0; i < n; i++ {
		g.vertices = append(g.vertices, Vertex{ID: first + i})
		g.incidence = append(g.incidence, nil)
	}

	return first
}

// HasVertex reports whether id is a valid vertex id.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.vertices)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a copy of the vertex catalog ordered by id.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// SetLabel replaces the label of vertex id.
func (g *Graph) SetLabel(id int, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= len(g.vertices) {
		return fmt.Errorf("SetLabel(%d): %w", id, ErrVertexNotFound)
	}
	g.vertices[id].Label = label

	return nil
}

// SetLabels replaces all labels at once; len(labels) must equal |V|.
func (g *Graph) SetLabels(labels []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(labels) != len(g.vertices) {
		return fmt.Errorf("SetLabels: got %d labels for %d vertices: %w", len(labels), len(g.vertices), ErrLabelCount)
	}
	for i := range g.vertices {
		g.vertices[i].Label = labels[i]
	}

	return nil
}

// Label returns the label of vertex id.
func (g *Graph) Label(id int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return "", fmt.Errorf("Label(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[id].Label, nil
}

// Labels returns the labels of all vertices ordered by id ("" = unlabelled).
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Label
	}

	return out
}

// HasLabels reports whether at least one vertex carries a non-empty label.
// A graph with no labels at all is refined from DefaultLabel.
func (g *Graph) HasLabels() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		if v.Label != "" {
			return true
		}
	}

	return false
}

// Neighbors returns the neighbor ids of vertex id, one entry per incident
// edge, in edge insertion order. A self-loop contributes id itself once.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.incidence[id]))
	for _, eid := range g.incidence[id] {
		e := g.edges[eid]
		if e.From == id {
			out = append(out, e.To)
		} else {
			out = append(out, e.From)
		}
	}

	return out, nil
}

// Degree returns the degree of vertex id. Following the usual convention a
// self-loop adds 2.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}
	deg := 0
	for _, eid := range g.incidence[id] {
		if g.edges[eid].IsLoop() {
			deg += 2
			continue
		}
		deg++
	}

	return deg, nil
}
