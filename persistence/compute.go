package persistence

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/pwl/core"
)

// Compute returns the persistence diagrams of g under its edge-weight
// filtration. labels[v] is the class label of vertex v; a nil slice labels
// every vertex 0.
//
// Error Conditions:
//   - ErrNilGraph         : g == nil.
//   - ErrLabelCount       : labels != nil and len(labels) != |V|.
//   - ErrBadLabel         : some label is negative.
//   - ErrBadWeight        : a non-loop edge has a NaN or negative weight.
//   - ErrBadUnpairedValue : WithUnpairedValue(v) with v < 0 or NaN.
//
// A graph with vertices but no edges is valid: every vertex is essential and
// the cycle diagram is empty.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Compute(g *core.Graph, labels []int, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.unpaired) || o.unpaired < 0 {
		return nil, fmt.Errorf("unpaired=%v: %w", o.unpaired, ErrBadUnpairedValue)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	if labels == nil {
		labels = make([]int, n)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("got %d labels for %d vertices: %w", len(labels), n, ErrLabelCount)
	}
	for v, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("vertex %d label %d: %w", v, l, ErrBadLabel)
		}
	}

	// 1. Non-loop edges sorted by weight; stable sort keeps edge-id order on ties.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	maxWeight := 0.0
	for _, e := range all {
		if e.IsLoop() {
			continue
		}
		if math.IsNaN(e.Weight) || e.Weight < 0 {
			return nil, fmt.Errorf("edge %d weight %v: %w", e.ID, e.Weight, ErrBadWeight)
		}
		edges = append(edges, e)
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2. Singleton components. rep and birth are indexed by union-find root.
	uf := NewUnionFind(n)
	rep := make([]int, n)
	birth := make([]float64, n)
	for v := 0; v < n; v++ {
		rep[v] = v
	}

	res := &Result{Components: make(Diagram, 0, n)}
	if o.cycles {
		res.Cycles = Diagram{}
	}

	// 3. Sweep the filtration.
	for _, e := range edges {
		ru, rv := uf.Find(e.From), uf.Find(e.To)
		if ru == rv {
			if o.cycles {
				lo, _ := e.Endpoints()
				res.Cycles = append(res.Cycles, Pair{Birth: e.Weight, Death: maxWeight, Label: labels[lo]})
			}
			continue
		}

		// Elder rule: younger (later birth, then larger representative) dies.
		young, old := ru, rv
		if birth[young] < birth[old] || (birth[young] == birth[old] && rep[young] < rep[old]) {
			young, old = old, young
		}
		res.Components = append(res.Components, Pair{
			Birth: birth[young],
			Death: e.Weight,
			Label: labels[rep[young]],
		})

		elderRep, elderBirth := rep[old], birth[old]
		root := uf.Union(ru, rv)
		rep[root] = elderRep
		birth[root] = elderBirth
	}

	// 4. Essential pairs in ascending representative order.
	roots := uf.Roots()
	sort.Slice(roots, func(i, j int) bool { return rep[roots[i]] < rep[roots[j]] })
	for _, r := range roots {
		res.Components = append(res.Components, Pair{
			Birth:     birth[r],
			Death:     o.unpaired,
			Label:     labels[rep[r]],
			Essential: true,
		})
	}

	return res, nil
}
