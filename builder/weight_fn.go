// File: weight_fn.go
// Role: edge-weight generators. Every generator returns finite values ≥ 0,
// so the emitted edges are always accepted by core.Graph.AddEdge.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight emitted when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn returns the weight of the next emitted edge. rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws uniformly from [min, max). Without an RNG it
// returns DefaultEdgeWeight. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn draws integers uniformly from [0, levels). Ties are
// frequent, which exercises tie-breaking in persistence.
// Without an RNG it returns DefaultEdgeWeight. Panics if levels < 1.
func IntegerWeightFn(levels int) WeightFn {
	if levels < 1 {
		panic(fmt.Sprintf("IntegerWeightFn: levels must be ≥ 1, got %d", levels))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(rng.Intn(levels))
	}
}
