// File: options.go
// Role: Transformer configuration via functional options.
package pwl

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pwl/weights"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrConfiguration wraps every invalid option or argument.
	ErrConfiguration = errors.New("pwl: invalid configuration")

	// ErrBadIterations indicates fewer than one WL iteration.
	ErrBadIterations = errors.New("pwl: number of iterations must be >= 1")

	// ErrBadTau indicates a negative or non-finite τ.
	ErrBadTau = errors.New("pwl: tau must be a non-negative finite number")

	// ErrBadPower indicates a non-positive or non-finite exponent.
	ErrBadPower = errors.New("pwl: power must be a positive finite number")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("pwl: workers must be >= 1")

	// ErrNoGraphs indicates an empty input or a batch in which every graph failed.
	ErrNoGraphs = errors.New("pwl: no graphs to transform")

	// ErrColumnMismatch indicates column widths that do not add up to the matrix width.
	ErrColumnMismatch = errors.New("pwl: column widths do not match feature matrix")

	// ErrOutOfRange indicates an iteration index outside the column layout.
	ErrOutOfRange = errors.New("pwl: iteration out of range")
)

// Defaults.
const (
	DefaultTau     = 1.0
	DefaultPower   = 1.0
	DefaultWorkers = 1
)

// Recorder receives per-graph measurements. metrics.Collector implements it.
type Recorder interface {
	// ObserveGraph records the wall time spent on one graph across all iterations.
	ObserveGraph(d time.Duration)

	// GraphFailed counts a graph dropped from a batch.
	GraphFailed(stage string)

	// AddPairs counts persistence pairs of the given dimension.
	AddPairs(dimension, n int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGraph(time.Duration) {}
func (nopRecorder) GraphFailed(string)         {}
func (nopRecorder) AddPairs(int, int)          {}

// Option configures a Transformer.
type Option func(*config)

type config struct {
	cycles   bool
	original bool
	metric   string
	order    float64
	tau      float64
	power    float64
	workers  int
	logger   *zap.Logger
	recorder Recorder
}

func defaultConfig() config {
	return config{
		metric:   weights.MetricMinkowski,
		order:    weights.DefaultOrder,
		tau:      DefaultTau,
		power:    DefaultPower,
		workers:  DefaultWorkers,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
}

// WithCycles appends cycle-persistence columns to every block.
func WithCycles(enabled bool) Option {
	return func(c *config) { c.cycles = enabled }
}

// WithOriginalFeatures appends label counts and a degree histogram to block 0.
func WithOriginalFeatures(enabled bool) Option {
	return func(c *config) { c.original = enabled }
}

// WithMetric selects the edge-weight metric (see package weights).
func WithMetric(name string) Option {
	return func(c *config) { c.metric = name }
}

// WithOrder sets the Minkowski order p.
func WithOrder(p float64) Option {
	return func(c *config) { c.order = p }
}

// WithTau sets the additive offset τ in (τ + pers)^q.
func WithTau(tau float64) Option {
	return func(c *config) { c.tau = tau }
}

// WithPower sets the exponent q in (τ + pers)^q.
func WithPower(q float64) Option {
	return func(c *config) { c.power = q }
}

// WithWorkers sets the number of goroutines for the per-graph stage.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a zap logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics attaches a Recorder; nil keeps the no-op recorder.
func WithMetrics(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

func (c *config) validate() error {
	if c.tau < 0 || math.IsNaN(c.tau) || math.IsInf(c.tau, 0) {
		return fmt.Errorf("%w: tau=%v: %w", ErrConfiguration, c.tau, ErrBadTau)
	}
	if c.power <= 0 || math.IsNaN(c.power) || math.IsInf(c.power, 0) {
		return fmt.Errorf("%w: power=%v: %w", ErrConfiguration, c.power, ErrBadPower)
	}
	if c.workers < 1 {
		return fmt.Errorf("%w: workers=%d: %w", ErrConfiguration, c.workers, ErrBadWorkers)
	}

	return nil
}
