// File: impl_path.go
// Role: Path(n): simple path P_n.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
//
// Edge order: (b+0-b+1), (b+1-b+2), ..., where b is the first new id.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		b := addBlock(g, n, cfg)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, b+i-1, b+i); err != nil {
				return err
			}
		}

		return nil
	}
}
