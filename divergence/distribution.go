package divergence

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pwl/persistence"
	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for distribution construction and comparison.
var (
	// ErrBadClassCount indicates a non-positive number of label classes.
	ErrBadClassCount = errors.New("divergence: class count must be positive")

	// ErrLabelOutOfRange indicates a pair label outside [0, C).
	ErrLabelOutOfRange = errors.New("divergence: label out of range")

	// ErrDegenerateDiagram indicates a diagram with zero total finite persistence.
	ErrDegenerateDiagram = errors.New("divergence: diagram has zero total persistence")

	// ErrBadPower indicates a non-positive or non-finite exponent.
	ErrBadPower = errors.New("divergence: power must be positive and finite")

	// ErrLengthMismatch indicates distributions of different lengths.
	ErrLengthMismatch = errors.New("divergence: distribution lengths differ")
)

// DefaultPower is the persistence exponent applied when WithPower is not given.
const DefaultPower = 2.0

// Option configures ToProbabilityDistribution.
type Option func(*options)

type options struct {
	power float64
}

// WithPower sets the exponent applied to each pair's persistence.
func WithPower(p float64) Option {
	return func(o *options) { o.power = p }
}

// ToProbabilityDistribution maps d to a distribution over C label classes.
//
// Steps:
//  1. Validate C and the power.
//  2. For each non-essential pair: check 0 ≤ Label < C, then add
//     (Death − Birth)^power to bucket Label.
//  3. Normalise by the total (floats.Scale). A zero total is degenerate.
//
// Complexity: O(len(d) + C).
func ToProbabilityDistribution(d persistence.Diagram, classes int, opts ...Option) ([]float64, error) {
	o := options{power: DefaultPower}
	for _, opt := range opts {
		opt(&o)
	}
	if classes <= 0 {
		return nil, fmt.Errorf("C=%d: %w", classes, ErrBadClassCount)
	}
	if o.power <= 0 || math.IsNaN(o.power) || math.IsInf(o.power, 0) {
		return nil, fmt.Errorf("power=%v: %w", o.power, ErrBadPower)
	}

	dist := make([]float64, classes)
	for i, p := range d {
		if p.Label < 0 || p.Label >= classes {
			return nil, fmt.Errorf("pair %d label %d not in [0,%d): %w", i, p.Label, classes, ErrLabelOutOfRange)
		}
		if p.Essential {
			continue
		}
		dist[p.Label] += math.Pow(p.Persistence(), o.power)
	}

	total := floats.Sum(dist)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("total=%v over %d pairs: %w", total, len(d), ErrDegenerateDiagram)
	}
	floats.Scale(1/total, dist)

	return dist, nil
}
