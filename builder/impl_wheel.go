// File: impl_wheel.go
// Role: Wheel(n): rim cycle C_{n-1} plus a hub joined to every rim vertex.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim C_{n-1} needs at least 3 vertices
)

// Wheel returns a Constructor for W_n (n ≥ 4). The rim takes the first n-1
// ids of the block (built by Cycle), the hub is the last one and receives
// label index n-1.
//
// Edge order: rim edges, then hub-rim_i for ascending i.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := g.AddVertex(cfg.labelFn(n-1, cfg.rng))

		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, rim+i); err != nil {
				return err
			}
		}

		return nil
	}
}
