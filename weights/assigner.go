// File: assigner.go
// Role: WeightAssigner: edge weights from refined labels, plus the weighted
//       adjacency rendering used for diagnostics.
// Determinism:
//   - Edge ids and order are preserved; weights depend only on the labeling.
package weights

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/wl"
	"gonum.org/v1/gonum/mat"
)

// Option configures an Assigner.
type Option func(*assignerConfig)

type assignerConfig struct {
	metric string
	order  float64
}

// WithMetric selects the metric by name (see package doc).
func WithMetric(name string) Option {
	return func(c *assignerConfig) { c.metric = name }
}

// WithOrder sets the Minkowski order p.
func WithOrder(p float64) Option {
	return func(c *assignerConfig) { c.order = p }
}

// Assigner computes edge weights from a WL labeling.
// It is immutable after construction and safe for concurrent use.
type Assigner struct {
	metric Metric
}

// NewAssigner resolves the options; defaults are minkowski with p = 2.
// Returns ErrUnknownMetric or ErrBadOrder on invalid configuration.
func NewAssigner(opts ...Option) (*Assigner, error) {
	cfg := assignerConfig{metric: MetricMinkowski, order: DefaultOrder}
	for _, opt := range opts {
		opt(&cfg)
	}
	m, err := ParseMetric(cfg.metric, cfg.order)
	if err != nil {
		return nil, err
	}

	return &Assigner{metric: m}, nil
}

// Metric returns the resolved metric.
func (a *Assigner) Metric() Metric { return a.metric }

// Weights returns one weight per edge of g (indexed by edge id).
//
// Complexity: O(Σ_e (|Raw[u]| + |Raw[v]|) log).
func (a *Assigner) Weights(g *core.Graph, lab wl.Labeling) ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Weights: %w", wl.ErrNilGraph)
	}
	if len(lab.Raw) != g.VertexCount() {
		return nil, fmt.Errorf("Weights: %d multisets for %d vertices: %w",
			len(lab.Raw), g.VertexCount(), ErrLabelingMismatch)
	}
	edges := g.Edges()
	out := make([]float64, len(edges))
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		out[e.ID] = a.metric.Distance(lab.Raw[e.From], lab.Raw[e.To])
	}

	return out, nil
}

// Assign returns a clone of g whose edges carry the metric weights. Labels and
// topology of g are not modified.
func (a *Assigner) Assign(g *core.Graph, lab wl.Labeling) (*core.Graph, error) {
	w, err := a.Weights(g, lab)
	if err != nil {
		return nil, err
	}
	out := g.Clone()
	for eid, x := range w {
		if err = out.SetWeight(eid, x); err != nil {
			return nil, fmt.Errorf("Assign: %w", err)
		}
	}

	return out, nil
}

// Adjacency renders the weighted adjacency matrix of g. Entries without an
// edge are NaN; parallel edges keep the smallest weight.
func Adjacency(g *core.Graph) (*mat.Dense, error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	A := mat.NewDense(n, n, data)
	for _, e := range g.Edges() {
		cur := A.At(e.From, e.To)
		if !math.IsNaN(cur) && cur <= e.Weight {
			continue
		}
		A.Set(e.From, e.To, e.Weight)
		A.Set(e.To, e.From, e.Weight)
	}

	return A, nil
}
