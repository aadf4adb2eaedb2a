// File: impl_star.go
// Role: Star(n): one center and n-1 leaves.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star K_{1,n-1} (n ≥ 2). The center is
// the first vertex of the block; leaves follow in ascending id.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := addBlock(g, n, cfg)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
