// File: transform.go
// Role: Transformer orchestration (WL pass, per-graph worker pool, assembly).
// Determinism:
//   - Rows follow input order; failures are reported sorted by input index.
// Concurrency:
//   - A Transformer may be shared; the retained diagrams of the latest run
//     are guarded by a mutex.
package pwl

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/persistence"
	"github.com/katalvlaran/pwl/weights"
	"github.com/katalvlaran/pwl/wl"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Failure describes one graph dropped by TransformBatch.
type Failure struct {
	// Index is the position of the graph in the input slice.
	Index int
	// Stage is "validate" or "persistence".
	Stage string
	Err   error
}

// Batch is the outcome of TransformBatch.
type Batch struct {
	// Features has one row per successful graph; nil when every graph failed.
	Features *mat.Dense
	// ColumnsPerIteration[k] is the width of block k.
	ColumnsPerIteration []int
	// GraphIndex[r] is the input index of row r.
	GraphIndex []int
	// Failures lists skipped graphs in input order.
	Failures []Failure
}

// Transformer computes persistent WL features.
type Transformer struct {
	cfg      config
	assigner *weights.Assigner

	mu       sync.RWMutex
	diagrams map[int][]persistence.Diagram
	cyc      map[int][]persistence.Diagram
}

// New validates opts and returns a Transformer. Invalid options return an
// error wrapping ErrConfiguration.
func New(opts ...Option) (*Transformer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a, err := weights.NewAssigner(weights.WithMetric(cfg.metric), weights.WithOrder(cfg.order))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return &Transformer{cfg: cfg, assigner: a}, nil
}

// Transform returns the feature matrix of graphs after numIterations WL
// iterations, and the column width of every iteration block. It fails on
// the first invalid graph.
func (t *Transformer) Transform(graphs []*core.Graph, numIterations int) (*mat.Dense, []int, error) {
	return t.TransformContext(context.Background(), graphs, numIterations)
}

// TransformContext is Transform with cancellation between graphs.
func (t *Transformer) TransformContext(ctx context.Context, graphs []*core.Graph, numIterations int) (*mat.Dense, []int, error) {
	b, err := t.run(ctx, graphs, numIterations, false)
	if err != nil {
		return nil, nil, err
	}

	return b.Features, b.ColumnsPerIteration, nil
}

// TransformBatch is Transform that skips failing graphs. Each skipped graph
// is logged at warn level and listed in Batch.Failures; no row is emitted
// for it. If every graph fails the returned Batch carries the failures and
// the error wraps ErrNoGraphs.
func (t *Transformer) TransformBatch(ctx context.Context, graphs []*core.Graph, numIterations int) (*Batch, error) {
	return t.run(ctx, graphs, numIterations, true)
}

// Diagrams returns the 0-dim diagrams of the latest run keyed by iteration,
// then by feature-matrix row. The map and its slices are copies.
func (t *Transformer) Diagrams() map[int][]persistence.Diagram {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return copyDiagrams(t.diagrams)
}

// Cycles returns the 1-dim diagrams of the latest run (nil unless WithCycles).
func (t *Transformer) Cycles() map[int][]persistence.Diagram {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return copyDiagrams(t.cyc)
}

// copyDiagrams copies the map and each per-iteration slice. Diagrams
// themselves are never written after Compute, so they are shared.
func copyDiagrams(m map[int][]persistence.Diagram) map[int][]persistence.Diagram {
	if m == nil {
		return nil
	}
	out := make(map[int][]persistence.Diagram, len(m))
	for k, ds := range m {
		out[k] = append([]persistence.Diagram(nil), ds...)
	}

	return out
}

// graphResult is the slot a worker fills for one graph.
type graphResult struct {
	row        []float64
	components []persistence.Diagram
	cycles     []persistence.Diagram
	err        error
}

func (t *Transformer) run(ctx context.Context, graphs []*core.Graph, numIterations int, skip bool) (*Batch, error) {
	log := t.cfg.logger
	if numIterations < 1 {
		return nil, fmt.Errorf("%w: iterations=%d: %w", ErrConfiguration, numIterations, ErrBadIterations)
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	batch := &Batch{}

	// 1. Validate; WL needs a clean dataset because compression is global.
	valid := make([]*core.Graph, 0, len(graphs))
	index := make([]int, 0, len(graphs))
	for i, g := range graphs {
		if err := wl.Validate(g); err != nil {
			if !skip {
				return nil, fmt.Errorf("graph %d: %w", i, err)
			}
			t.skip(batch, i, "validate", err)
			continue
		}
		valid = append(valid, g)
		index = append(index, i)
	}
	if len(valid) == 0 {
		return batch, fmt.Errorf("all %d graphs failed: %w", len(graphs), ErrNoGraphs)
	}

	// 2. One WL pass over the dataset.
	labels, err := wl.Run(valid, numIterations)
	if err != nil {
		return nil, err
	}
	for k, c := range labels.NumLabels {
		log.Debug("wl iteration", zap.Int("iteration", k), zap.Int("labels", c))
	}
	lay := newLayout(labels.NumLabels, t.cfg.cycles, t.cfg.original, maxDegree(valid))
	batch.ColumnsPerIteration = lay.widths

	// 3. Per-graph stage.
	results := t.process(ctx, valid, labels, lay)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 4. Assemble rows in input order.
	data := make([]float64, 0, len(valid)*lay.total)
	diagrams := make(map[int][]persistence.Diagram, len(lay.widths))
	var cyc map[int][]persistence.Diagram
	if t.cfg.cycles {
		cyc = make(map[int][]persistence.Diagram, len(lay.widths))
	}
	for j, r := range results {
		if r.err != nil {
			if !skip {
				return nil, fmt.Errorf("graph %d: %w", index[j], r.err)
			}
			t.skip(batch, index[j], "persistence", r.err)
			continue
		}
		data = append(data, r.row...)
		batch.GraphIndex = append(batch.GraphIndex, index[j])
		for k := range lay.widths {
			diagrams[k] = append(diagrams[k], r.components[k])
			if cyc != nil {
				cyc[k] = append(cyc[k], r.cycles[k])
			}
		}
	}
	sort.SliceStable(batch.Failures, func(a, b int) bool {
		return batch.Failures[a].Index < batch.Failures[b].Index
	})
	if len(batch.GraphIndex) == 0 {
		return batch, fmt.Errorf("all %d graphs failed: %w", len(graphs), ErrNoGraphs)
	}

	batch.Features = mat.NewDense(len(batch.GraphIndex), lay.total, data)

	t.mu.Lock()
	t.diagrams, t.cyc = diagrams, cyc
	t.mu.Unlock()

	log.Info("persistent weisfeiler-lehman transform finished",
		zap.Int("rows", len(batch.GraphIndex)),
		zap.Int("columns", lay.total),
		zap.Int("iterations", numIterations),
		zap.Int("skipped", len(batch.Failures)),
	)

	return batch, nil
}

// process runs the per-graph stage on a fixed pool of workers.
func (t *Transformer) process(ctx context.Context, graphs []*core.Graph, labels *wl.Result, lay layout) []graphResult {
	results := make([]graphResult, len(graphs))
	jobs := make(chan int, len(graphs))
	for j := range graphs {
		jobs <- j
	}
	close(jobs)

	workers := t.cfg.workers
	if workers > len(graphs) {
		workers = len(graphs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results[j].err = err
					continue
				}
				start := time.Now()
				results[j] = t.graphFeatures(graphs[j], j, labels, lay)
				if results[j].err == nil {
					t.cfg.recorder.ObserveGraph(time.Since(start))
				}
			}
		}()
	}
	wg.Wait()

	return results
}

// graphFeatures computes the full row and diagrams of graph j.
//
// Steps (per iteration k):
//  1. Weight the edges of g from its labeling at k.
//  2. Compute the diagrams of the weighted graph.
//  3. Fold them into block k; block 0 optionally gets original features.
func (t *Transformer) graphFeatures(g *core.Graph, j int, labels *wl.Result, lay layout) graphResult {
	res := graphResult{
		row:        make([]float64, lay.total),
		components: make([]persistence.Diagram, len(lay.widths)),
	}
	if t.cfg.cycles {
		res.cycles = make([]persistence.Diagram, len(lay.widths))
	}

	for k := range lay.widths {
		lab, err := labels.Labeling(k, j)
		if err != nil {
			res.err = err
			return res
		}
		weighted, err := t.assigner.Assign(g, lab)
		if err != nil {
			res.err = fmt.Errorf("iteration %d: %w", k, err)
			return res
		}
		d, err := persistence.Compute(weighted, lab.Compressed, persistence.WithCycles(t.cfg.cycles))
		if err != nil {
			res.err = fmt.Errorf("iteration %d: %w", k, err)
			return res
		}

		off := lay.offsets[k]
		c := lay.labels[k]
		addPairs(res.row, off, d.Components, t.cfg.tau, t.cfg.power)
		res.components[k] = d.Components
		t.cfg.recorder.AddPairs(0, len(d.Components))
		if t.cfg.cycles {
			addPairs(res.row, off+c, d.Cycles, t.cfg.tau, t.cfg.power)
			res.cycles[k] = d.Cycles
			t.cfg.recorder.AddPairs(1, len(d.Cycles))
			off += c
		}
		if t.cfg.original && k == 0 {
			if err := addOriginal(res.row, off+c, c, g, lab.Compressed); err != nil {
				res.err = err
				return res
			}
		}
	}

	return res
}

func (t *Transformer) skip(b *Batch, index int, stage string, err error) {
	b.Failures = append(b.Failures, Failure{Index: index, Stage: stage, Err: err})
	t.cfg.recorder.GraphFailed(stage)
	t.cfg.logger.Warn("skipping graph",
		zap.Int("graph", index),
		zap.String("stage", stage),
		zap.Error(err),
	)
}
