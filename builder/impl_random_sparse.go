// File: impl_random_sparse.go
// Role: RandomSparse(n, p): Erdős–Rényi G(n, p).
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each pair i<j
// independently with probability p.
//
// Requirements: n ≥ 1, 0 ≤ p ≤ 1, and an RNG (WithSeed/WithRand) unless
// p is exactly 0 or 1.
// Determinism: pairs are visited in lexicographic order and each draws
// exactly one Float64, so a fixed seed fixes the graph.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b := addBlock(g, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if rng != nil && p > probMin && p < probMax {
					include = rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
