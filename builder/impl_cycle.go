// File: impl_cycle.go
// Role: Cycle(n): simple cycle C_n.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
//
// Edge order: i-(i+1) mod n for i = 0..n-1, closing edge last.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		b := addBlock(g, n, cfg)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, b+i, b+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
