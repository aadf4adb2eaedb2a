// File: features.go
// Role: column layout and per-graph aggregation of diagrams into feature rows.
// Determinism:
//   - A row depends only on its graph, its labelings and the layout.
package pwl

import (
	"math"

	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/persistence"
)

// layout fixes the column offsets of every iteration block.
type layout struct {
	labels   []int // C_k
	offsets  []int
	widths   []int
	cycles   bool
	original bool
	degrees  int // D = 1 + max degree; 0 without original features
	total    int
}

func newLayout(numLabels []int, cycles, original bool, maxDegree int) layout {
	l := layout{
		labels:   numLabels,
		offsets:  make([]int, len(numLabels)),
		widths:   make([]int, len(numLabels)),
		cycles:   cycles,
		original: original,
	}
	if original {
		l.degrees = maxDegree + 1
	}
	for k, c := range numLabels {
		w := c
		if cycles {
			w += c
		}
		if original && k == 0 {
			w += c + l.degrees
		}
		l.offsets[k] = l.total
		l.widths[k] = w
		l.total += w
	}

	return l
}

// addPairs folds a diagram into row[off : off+C] with (τ + pers)^q per pair.
func addPairs(row []float64, off int, d persistence.Diagram, tau, power float64) {
	for _, p := range d {
		pers := 0.0
		if !p.Essential {
			pers = p.Persistence()
		}
		row[off+p.Label] += math.Pow(tau+pers, power)
	}
}

// addOriginal writes label counts and the degree histogram of g at off.
func addOriginal(row []float64, off, numLabels int, g *core.Graph, labels []int) error {
	for v, l := range labels {
		row[off+l]++
		deg, err := g.Degree(v)
		if err != nil {
			return err
		}
		row[off+numLabels+deg]++
	}

	return nil
}

// maxDegree returns the largest vertex degree over graphs.
func maxDegree(graphs []*core.Graph) int {
	best := 0
	for _, g := range graphs {
		for v := 0; v < g.VertexCount(); v++ {
			if d, err := g.Degree(v); err == nil && d > best {
				best = d
			}
		}
	}

	return best
}
