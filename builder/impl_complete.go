// File: impl_complete.go
// Role: Complete(n): complete simple graph K_n.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for K_n (n ≥ 1).
//
// Edge order: lexicographic (i, j) with i < j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		b := addBlock(g, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
