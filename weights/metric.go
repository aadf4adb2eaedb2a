package weights

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Metric names accepted by ParseMetric and WithMetric.
const (
	MetricMinkowski = "minkowski"
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
	MetricJaccard   = "jaccard"
)

// DefaultOrder is the Minkowski order used when none is given.
const DefaultOrder = 2.0

var (
	// ErrUnknownMetric indicates an unsupported metric name.
	ErrUnknownMetric = errors.New("weights: unknown metric")

	// ErrBadOrder indicates a Minkowski order below 1 or NaN.
	ErrBadOrder = errors.New("weights: minkowski order must be >= 1")

	// ErrLabelingMismatch indicates a labeling whose size differs from the graph.
	ErrLabelingMismatch = errors.New("weights: labeling does not match graph")

	// ErrEmptyGraph indicates an operation that needs at least one vertex.
	ErrEmptyGraph = errors.New("weights: graph has no vertices")
)

// Metric measures the distance between two label multisets.
type Metric interface {
	// Name returns the canonical metric name.
	Name() string

	// Distance returns a non-negative, symmetric distance that is 0 iff a and
	// b contain the same labels with the same multiplicities.
	Distance(a, b []int) float64
}

// ParseMetric resolves a metric by name. The order p is only used by
// "minkowski".
func ParseMetric(name string, p float64) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MetricMinkowski:
		if math.IsNaN(p) || p < 1 {
			return nil, fmt.Errorf("p=%v: %w", p, ErrBadOrder)
		}
		return Minkowski{P: p}, nil
	case MetricEuclidean:
		return Minkowski{P: 2}, nil
	case MetricManhattan:
		return Minkowski{P: 1}, nil
	case MetricChebyshev:
		return Minkowski{P: math.Inf(1)}, nil
	case MetricJaccard:
		return Jaccard{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}
}

// Minkowski is the L-p distance between count vectors.
type Minkowski struct {
	P float64
}

// Name implements Metric.
func (m Minkowski) Name() string {
	switch {
	case m.P == 1:
		return MetricManhattan
	case m.P == 2:
		return MetricEuclidean
	case math.IsInf(m.P, 1):
		return MetricChebyshev
	default:
		return MetricMinkowski
	}
}

// Distance implements Metric.
func (m Minkowski) Distance(a, b []int) float64 {
	x, y := countVectors(a, b)
	if len(x) == 0 {
		return 0
	}

	return floats.Distance(x, y, m.P)
}

// Jaccard is the weighted (multiset) Jaccard distance.
type Jaccard struct{}

// Name implements Metric.
func (Jaccard) Name() string { return MetricJaccard }

// Distance implements Metric.
func (Jaccard) Distance(a, b []int) float64 {
	x, y := countVectors(a, b)
	var lo, hi float64
	for i := range x {
		lo += math.Min(x[i], y[i])
		hi += math.Max(x[i], y[i])
	}
	if hi == 0 {
		return 0
	}

	return 1 - lo/hi
}

// countVectors projects two multisets onto their joint, sorted alphabet.
func countVectors(a, b []int) (x, y []float64) {
	pos := make(map[int]int, len(a)+len(b))
	for _, l := range a {
		pos[l] = 0
	}
	for _, l := range b {
		pos[l] = 0
	}
	alphabet := make([]int, 0, len(pos))
	for l := range pos {
		alphabet = append(alphabet, l)
	}
	sort.Ints(alphabet)
	for i, l := range alphabet {
		pos[l] = i
	}

	x = make([]float64, len(alphabet))
	y = make([]float64, len(alphabet))
	for _, l := range a {
		x[pos[l]]++
	}
	for _, l := range b {
		y[pos[l]]++
	}

	return x, y
}
