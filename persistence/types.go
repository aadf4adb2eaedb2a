package persistence

import (
	"errors"
	"math"
)

// Sentinel errors for persistence computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("persistence: graph is nil")

	// ErrLabelCount indicates a label slice whose length differs from |V|.
	ErrLabelCount = errors.New("persistence: label count does not match vertex count")

	// ErrBadWeight indicates a NaN or negative edge weight.
	ErrBadWeight = errors.New("persistence: edge weight must be a non-negative number")

	// ErrBadLabel indicates a negative vertex label.
	ErrBadLabel = errors.New("persistence: label must be non-negative")

	// ErrBadUnpairedValue indicates a negative or NaN unpaired value.
	ErrBadUnpairedValue = errors.New("persistence: unpaired value must be a non-negative number")
)

// Pair is one point of a persistence diagram.
//
// Label ties the pair to the vertex label that produced it (the dying
// representative for 0-dim pairs, the smaller endpoint for cycles).
// Essential marks features that never die within the filtration.
type Pair struct {
	Birth     float64
	Death     float64
	Label     int
	Essential bool
}

// Persistence returns Death − Birth (+Inf for essential pairs with infinite death).
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// Diagram is an ordered sequence of persistence pairs.
type Diagram []Pair

// Len returns the number of pairs.
func (d Diagram) Len() int { return len(d) }

// Finite returns the non-essential pairs, order preserved.
func (d Diagram) Finite() Diagram {
	out := make(Diagram, 0, len(d))
	for _, p := range d {
		if !p.Essential {
			out = append(out, p)
		}
	}

	return out
}

// EssentialCount returns the number of essential pairs.
func (d Diagram) EssentialCount() int {
	n := 0
	for _, p := range d {
		if p.Essential {
			n++
		}
	}

	return n
}

// TotalPersistence returns Σ (Death − Birth)^power over the non-essential pairs.
func (d Diagram) TotalPersistence(power float64) float64 {
	var s float64
	for _, p := range d {
		if p.Essential {
			continue
		}
		s += math.Pow(p.Persistence(), power)
	}

	return s
}

// Deaths returns the death values of the non-essential pairs.
func (d Diagram) Deaths() []float64 {
	out := make([]float64, 0, len(d))
	for _, p := range d {
		if !p.Essential {
			out = append(out, p.Death)
		}
	}

	return out
}

// Result holds the diagrams of one graph.
type Result struct {
	// Components is the 0-dimensional diagram.
	Components Diagram

	// Cycles is the 1-dimensional diagram; nil unless WithCycles(true).
	Cycles Diagram
}

// Option configures Compute.
type Option func(*options)

type options struct {
	cycles   bool
	unpaired float64
}

func defaultOptions() options {
	return options{unpaired: math.Inf(1)}
}

// WithCycles enables the 1-dimensional (cycle) diagram.
func WithCycles(enabled bool) Option {
	return func(o *options) { o.cycles = enabled }
}

// WithUnpairedValue sets the death value of essential 0-dim pairs
// (default +Inf). Essential pairs stay flagged as Essential.
func WithUnpairedValue(v float64) Option {
	return func(o *options) { o.unpaired = v }
}
