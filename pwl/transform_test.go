package pwl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/pwl/builder"
	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/pwl"
	"github.com/katalvlaran/pwl/weights"
	"github.com/katalvlaran/pwl/wl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

// build assembles a fixture graph from builder constructors.
func build(bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// ring returns an unlabelled cycle on n vertices.
func ring(n int) *core.Graph { return build(nil, builder.Cycle(n)) }

// path returns an unlabelled path on n vertices.
func path(n int) *core.Graph { return build(nil, builder.Path(n)) }

// randomLabelled returns a reproducible labelled sparse graph.
func randomLabelled(seed int64, n int) *core.Graph {
	return build([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithLabelFn(builder.RandomLabelFn("A", "B", "C")),
	}, builder.RandomSparse(n, 0.25))
}

func dataset() []*core.Graph {
	out := make([]*core.Graph, 0, 12)
	for s := int64(0); s < 12; s++ {
		out = append(out, randomLabelled(s, 6+int(s%5)))
	}

	return out
}

// TestTransform_RegularGraphsReduceToLabelCounts: zero weights give WL subtree counts.
func TestTransform_RegularGraphsReduceToLabelCounts(t *testing.T) {
	tr, err := pwl.New()
	require.NoError(t, err)

	X, cols, err := tr.Transform([]*core.Graph{ring(3), ring(4)}, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1}, cols)
	assert.Equal(t, []float64{3, 3}, mat.Row(nil, 0, X))
	assert.Equal(t, []float64{4, 4}, mat.Row(nil, 1, X))
}

// TestTransform_PathHandComputed walks a 3-vertex path through one iteration.
func TestTransform_PathHandComputed(t *testing.T) {
	tr, err := pwl.New()
	require.NoError(t, err)

	X, cols, err := tr.Transform([]*core.Graph{path(3)}, 1)
	require.NoError(t, err)

	// Block 0: one label, weights 0. Block 1: ends → label 0, middle → label 1,
	// both edges weigh 1; the middle dies first, then the far end.
	assert.Equal(t, []int{1, 2}, cols)
	assert.InDeltaSlice(t, []float64{3, 3, 2}, mat.Row(nil, 0, X), 1e-12)
}

// TestTransform_Cycles appends one cycle column block per iteration.
func TestTransform_Cycles(t *testing.T) {
	tr, err := pwl.New(pwl.WithCycles(true))
	require.NoError(t, err)

	X, cols, err := tr.Transform([]*core.Graph{ring(3)}, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2}, cols)
	assert.Equal(t, []float64{3, 1, 3, 1}, mat.Row(nil, 0, X))

	cyc := tr.Cycles()
	require.Len(t, cyc, 2)
	require.Len(t, cyc[0], 1)
	assert.Len(t, cyc[0][0], 1)
}

// TestTransform_OriginalFeatures adds label counts and a degree histogram to block 0.
func TestTransform_OriginalFeatures(t *testing.T) {
	tr, err := pwl.New(pwl.WithOriginalFeatures(true))
	require.NoError(t, err)

	X, cols, err := tr.Transform([]*core.Graph{path(3)}, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 2}, cols)
	assert.InDeltaSlice(t, []float64{3, 3, 0, 2, 1, 3, 2}, mat.Row(nil, 0, X), 1e-12)
}

// TestTransform_TauAndPower checks (τ + pers)^q.
func TestTransform_TauAndPower(t *testing.T) {
	tr, err := pwl.New(pwl.WithTau(0), pwl.WithPower(2))
	require.NoError(t, err)

	X, _, err := tr.Transform([]*core.Graph{path(3)}, 1)
	require.NoError(t, err)

	// τ = 0 drops essential and zero-persistence pairs; each weight-1 pair adds 1.
	assert.InDeltaSlice(t, []float64{0, 1, 1}, mat.Row(nil, 0, X), 1e-12)
}

// TestTransform_WorkerCountIndependent compares sequential and parallel runs.
func TestTransform_WorkerCountIndependent(t *testing.T) {
	graphs := dataset()

	seq, err := pwl.New(pwl.WithCycles(true), pwl.WithOriginalFeatures(true))
	require.NoError(t, err)
	par, err := pwl.New(pwl.WithCycles(true), pwl.WithOriginalFeatures(true), pwl.WithWorkers(4))
	require.NoError(t, err)

	X1, c1, err := seq.Transform(graphs, 3)
	require.NoError(t, err)
	X2, c2, err := par.Transform(graphs, 3)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.True(t, mat.Equal(X1, X2))
	assert.Equal(t, seq.Diagrams(), par.Diagrams())
}

// TestTransform_Shape checks rows, column sums and retained diagrams.
func TestTransform_Shape(t *testing.T) {
	graphs := dataset()
	tr, err := pwl.New(pwl.WithMetric(weights.MetricJaccard))
	require.NoError(t, err)

	X, cols, err := tr.Transform(graphs, 2)
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, len(graphs), r)
	require.Len(t, cols, 3)
	assert.Equal(t, cols[0]+cols[1]+cols[2], c)

	d := tr.Diagrams()
	for k := 0; k <= 2; k++ {
		require.Len(t, d[k], len(graphs))
		for i, g := range graphs {
			assert.Len(t, d[k][i], g.VertexCount(), "one 0-dim pair per vertex")
		}
	}
	assert.Nil(t, tr.Cycles())
}

// TestTransformBatch_SkipsAndLogs drops bad graphs without zero-filled rows.
func TestTransformBatch_SkipsAndLogs(t *testing.T) {
	partial := core.NewGraph()
	partial.AddVertex("C")
	partial.AddVertex("")
	graphs := []*core.Graph{ring(3), nil, partial, path(4)}

	obs, logs := observer.New(zapcore.WarnLevel)
	rec := &countingRecorder{}
	tr, err := pwl.New(pwl.WithLogger(zap.New(obs)), pwl.WithMetrics(rec))
	require.NoError(t, err)

	b, err := tr.TransformBatch(context.Background(), graphs, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, b.GraphIndex)
	r, _ := b.Features.Dims()
	assert.Equal(t, 2, r)
	require.Len(t, b.Failures, 2)
	assert.Equal(t, 1, b.Failures[0].Index)
	assert.ErrorIs(t, b.Failures[0].Err, wl.ErrNilGraph)
	assert.Equal(t, 2, b.Failures[1].Index)
	assert.ErrorIs(t, b.Failures[1].Err, wl.ErrMissingLabel)

	assert.Equal(t, 2, logs.FilterMessage("skipping graph").Len())
	assert.Equal(t, 2, rec.failed)
	assert.Equal(t, 2, rec.graphs)
	assert.Equal(t, 3*(3+4), rec.pairs[0])

	// The fail-fast entry point rejects the same input.
	_, _, err = tr.Transform(graphs, 2)
	assert.ErrorIs(t, err, wl.ErrNilGraph)
}

// TestDiagrams_ReturnsCopies keeps retained diagrams safe from caller edits.
func TestDiagrams_ReturnsCopies(t *testing.T) {
	tr, err := pwl.New(pwl.WithCycles(true))
	require.NoError(t, err)
	_, _, err = tr.Transform([]*core.Graph{ring(3), path(4)}, 1)
	require.NoError(t, err)

	d := tr.Diagrams()
	want := len(d[0][0])
	delete(d, 1)
	d[0][0] = nil
	c := tr.Cycles()
	c[0] = nil

	again := tr.Diagrams()
	require.Len(t, again, 2)
	assert.Len(t, again[0][0], want)
	assert.Len(t, tr.Cycles()[0], 2)
}

// TestTransformBatch_AllFail reports every failure and ErrNoGraphs.
func TestTransformBatch_AllFail(t *testing.T) {
	tr, err := pwl.New()
	require.NoError(t, err)

	b, err := tr.TransformBatch(context.Background(), []*core.Graph{nil, core.NewGraph()}, 1)
	assert.ErrorIs(t, err, pwl.ErrNoGraphs)
	require.NotNil(t, b)
	assert.Nil(t, b.Features)
	assert.Len(t, b.Failures, 2)
}

// TestTransform_Configuration covers option and argument validation.
func TestTransform_Configuration(t *testing.T) {
	cases := []struct {
		name string
		opts []pwl.Option
		want error
	}{
		{"tau", []pwl.Option{pwl.WithTau(-1)}, pwl.ErrBadTau},
		{"power", []pwl.Option{pwl.WithPower(0)}, pwl.ErrBadPower},
		{"workers", []pwl.Option{pwl.WithWorkers(0)}, pwl.ErrBadWorkers},
		{"metric", []pwl.Option{pwl.WithMetric("cosine")}, weights.ErrUnknownMetric},
		{"order", []pwl.Option{pwl.WithOrder(0.5)}, weights.ErrBadOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pwl.New(tc.opts...)
			assert.ErrorIs(t, err, pwl.ErrConfiguration)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	tr, err := pwl.New()
	require.NoError(t, err)
	_, _, err = tr.Transform([]*core.Graph{ring(3)}, 0)
	assert.ErrorIs(t, err, pwl.ErrConfiguration)
	assert.ErrorIs(t, err, pwl.ErrBadIterations)

	_, _, err = tr.Transform(nil, 1)
	assert.ErrorIs(t, err, pwl.ErrNoGraphs)
}

// TestTransformContext_Cancelled stops before producing features.
func TestTransformContext_Cancelled(t *testing.T) {
	tr, err := pwl.New(pwl.WithWorkers(2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = tr.TransformContext(ctx, dataset(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// countingRecorder is a Recorder for assertions.
type countingRecorder struct {
	mu     sync.Mutex
	graphs int
	failed int
	pairs  map[int]int
}

func (r *countingRecorder) ObserveGraph(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs++
}

func (r *countingRecorder) GraphFailed(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

func (r *countingRecorder) AddPairs(dim, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pairs == nil {
		r.pairs = map[int]int{}
	}
	r.pairs[dim] += n
}
