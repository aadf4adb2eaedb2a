// Package builder provides deterministic constructors for labelled,
// edge-weighted core.Graph fixtures and synthetic datasets.
//
// A Constructor appends a block of fresh vertices to the graph and wires
// them into a fixed topology. Constructors compose: BuildGraph(nil, opts,
// Cycle(5), Path(3)) yields the disjoint union C_5 + P_3 with vertex ids
// 0..4 for the cycle and 5..7 for the path.
//
// Topologies: Path, Cycle, Star, Wheel, Complete, RandomSparse.
//
// Options:
//   - WithSeed / WithRand: RNG for RandomSparse and stochastic label or
//     weight functions. Same seed and call order ⇒ identical graphs.
//   - WithLabelFn: vertex label per local index (default: unlabelled).
//   - WithWeightFn: edge weight per emitted edge (default: DefaultEdgeWeight).
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
// Option constructors panic on meaningless arguments (nil functions,
// negative weights); constructors never panic.
package builder
