// File: config.go
// Role: internal configuration and deterministic defaults.
//
// Defaults:
//   - labelFn  = UnlabelledFn  (every vertex unlabelled)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)
//   - rng      = nil           (pure/deterministic unless seeded)
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	labelFn  LabelFn
	weightFn WeightFn
	rng      *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  UnlabelledFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
