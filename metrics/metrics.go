// Package metrics exposes Prometheus collectors for feature transforms.
// A Collector satisfies pwl.Recorder and is registered on a caller-owned
// registry; nothing is registered globally.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "pwl"

// Collector groups the transform metrics.
type Collector struct {
	// GraphsProcessed counts graphs that reached the per-graph stage.
	GraphsProcessed prometheus.Counter

	// GraphsFailed counts graphs skipped by a batch, by stage.
	GraphsFailed *prometheus.CounterVec

	// Pairs counts persistence pairs, by dimension.
	Pairs *prometheus.CounterVec

	// GraphSeconds observes per-graph wall time across all iterations.
	GraphSeconds prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// Registration errors (e.g. duplicates) are returned unchanged.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		GraphsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "graphs_processed_total",
			Help:      "Total number of graphs that went through weighting and persistence",
		}),
		GraphsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "graphs_failed_total",
			Help:      "Total number of graphs skipped by a batch transform",
		}, []string{"stage"}),
		Pairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "persistence_pairs_total",
			Help:      "Total number of persistence pairs computed",
		}, []string{"dimension"}),
		GraphSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "graph_seconds",
			Help:      "Wall time spent on one graph across all iterations",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}

	for _, col := range []prometheus.Collector{c.GraphsProcessed, c.GraphsFailed, c.Pairs, c.GraphSeconds} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveGraph records one processed graph.
func (c *Collector) ObserveGraph(d time.Duration) {
	c.GraphsProcessed.Inc()
	c.GraphSeconds.Observe(d.Seconds())
}

// GraphFailed counts a skipped graph.
func (c *Collector) GraphFailed(stage string) {
	c.GraphsFailed.WithLabelValues(stage).Inc()
}

// AddPairs counts n pairs of the given dimension.
func (c *Collector) AddPairs(dimension, n int) {
	c.Pairs.WithLabelValues(strconv.Itoa(dimension)).Add(float64(n))
}

// WriteTextfile gathers g and writes it in the text exposition format to
// path, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
