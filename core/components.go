package core

import "sort"

// ConnectedComponents returns the vertex sets of all connected components.
// Each component is sorted ascending and components are ordered by their
// smallest vertex id, so the result is deterministic.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the queue.
func (g *Graph) ConnectedComponents() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, eid := range g.incidence[u] {
				e := g.edges[eid]
				w := e.To
				if w == u {
					w = e.From
				}
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int {
	return len(g.ConnectedComponents())
}
