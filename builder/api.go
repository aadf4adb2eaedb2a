// File: api.go
// Role: public entry points of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...).
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical graphs.
//   - Safety: constructors return sentinel errors and never panic.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

// Constructor appends a block of vertices and edges to g using the resolved
// builderConfig. Constructors validate parameters before mutating g and
// emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// every constructor in order. The first constructor error is wrapped with
// "BuildGraph: %w" and returned; no partial graph is returned.
//
// Complexity: O(len(bopts)) + Σ cost of the constructors.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildDataset builds count graphs; graph i is assembled from shape(i).
// The options, including the RNG, are resolved once and shared, so the
// whole dataset is reproducible from a single WithSeed.
func BuildDataset(count int, bopts []BuilderOption, shape func(i int) []Constructor) ([]*core.Graph, error) {
	if count < 1 {
		return nil, fmt.Errorf("BuildDataset: count=%d: %w", count, ErrTooFewVertices)
	}
	if shape == nil {
		return nil, fmt.Errorf("BuildDataset: nil shape: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	out := make([]*core.Graph, 0, count)
	for i := 0; i < count; i++ {
		g := core.NewGraph()
		for j, fn := range shape(i) {
			if fn == nil {
				return nil, fmt.Errorf("BuildDataset: graph %d: nil constructor at index %d: %w", i, j, ErrConstructFailed)
			}
			if err := fn(g, cfg); err != nil {
				return nil, fmt.Errorf("BuildDataset: graph %d: %w", i, err)
			}
		}
		out = append(out, g)
	}

	return out, nil
}

// addBlock appends n vertices labelled by cfg.labelFn and returns the id of the first.
func addBlock(g *core.Graph, n int, cfg builderConfig) int {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.labelFn(i, cfg.rng))
	}

	return base
}

// addEdge adds u-v with the next configured weight, wrapping errors with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
