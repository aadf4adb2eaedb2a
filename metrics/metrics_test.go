package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/pwl/builder"
	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/metrics"
	"github.com/katalvlaran/pwl/pwl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pwl.Recorder = (*metrics.Collector)(nil)

// TestCollector_Records checks every collector directly.
func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveGraph(3 * time.Millisecond)
	c.ObserveGraph(time.Millisecond)
	c.GraphFailed("validate")
	c.AddPairs(0, 5)
	c.AddPairs(1, 2)
	c.AddPairs(0, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.GraphsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.GraphsFailed.WithLabelValues("validate")))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.Pairs.WithLabelValues("0")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Pairs.WithLabelValues("1")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.GraphSeconds))
}

// TestNew_DuplicateRegistration surfaces registry errors.
func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

// TestCollector_WithTransformer wires the collector into a batch transform.
func TestCollector_WithTransformer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	graphs, err := builder.BuildDataset(5, []builder.BuilderOption{builder.WithSeed(9)},
		func(i int) []builder.Constructor {
			return []builder.Constructor{builder.RandomSparse(6+i, 0.5)}
		})
	require.NoError(t, err)
	graphs = append(graphs, core.NewGraph())

	tr, err := pwl.New(pwl.WithMetrics(c), pwl.WithCycles(true))
	require.NoError(t, err)
	b, err := tr.TransformBatch(context.Background(), graphs, 2)
	require.NoError(t, err)
	require.Len(t, b.Failures, 1)

	assert.Equal(t, 5.0, testutil.ToFloat64(c.GraphsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.GraphsFailed.WithLabelValues("validate")))
	// One 0-dim pair per vertex per iteration: 3 × (6+7+8+9+10).
	assert.Equal(t, 120.0, testutil.ToFloat64(c.Pairs.WithLabelValues("0")))

	path := filepath.Join(t.TempDir(), "pwl.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "pwl_graphs_processed_total 5"))
}
