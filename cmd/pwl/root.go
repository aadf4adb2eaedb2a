// File: cmd/pwl/root.go
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/pwl/internal/config"
	"github.com/katalvlaran/pwl/internal/observability"
	"github.com/katalvlaran/pwl/metrics"
	"github.com/katalvlaran/pwl/pwl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfgFile string
	labels  string

	cfg       *config.Config
	log       *zap.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

// flagKeys binds persistent flags to configuration keys.
var flagKeys = map[string]string{
	"dataset":           "transform.dataset",
	"iterations":        "transform.iterations",
	"cycles":            "transform.cycles",
	"original-features": "transform.original_features",
	"metric":            "transform.metric",
	"p":                 "transform.p",
	"tau":               "transform.tau",
	"power":             "transform.power",
	"workers":           "transform.workers",
	"skip-failures":     "transform.skip_failures",
	"log-level":         "logger.level",
	"log-format":        "logger.format",
	"log-file":          "logger.log_file",
	"metrics-textfile":  "metrics.textfile",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pwl",
		Short:         "Persistent Weisfeiler–Lehman graph features",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	f.StringVarP(&a.labels, "labels", "l", "", "file with one classification target per line")
	f.String("dataset", "", "dataset name, used for the default log file name")
	f.IntP("iterations", "n", 3, "number of Weisfeiler–Lehman iterations")
	f.Bool("cycles", false, "add cycle persistence columns")
	f.Bool("original-features", false, "add label counts and degree histogram to iteration 0")
	f.String("metric", "minkowski", "edge metric: minkowski, euclidean, manhattan, chebyshev, jaccard")
	f.Float64("p", 2, "Minkowski order")
	f.Float64("tau", 1, "additive offset in (tau + persistence)^power")
	f.Float64("power", 1, "exponent in (tau + persistence)^power")
	f.Int("workers", 1, "number of graphs processed concurrently")
	f.Bool("skip-failures", false, "skip graphs that fail instead of aborting")
	f.String("log-level", "info", "log level")
	f.String("log-format", "console", "console or json")
	f.String("log-file", "", "rotated JSON log file (default <dataset>_<iterations>.log when --dataset is set)")
	f.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(newTransformCmd(a), newDiagramsCmd(a), newMetricCmd(a), newDivergenceCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := observability.NewLogger(cfg.Logger, cfg.LogFileName())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With(zap.String("run_id", uuid.New().String()))
	a.registry = prometheus.NewRegistry()
	a.collector, err = metrics.New(a.registry)
	if err != nil {
		return err
	}
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Any("transform", cfg.Transform),
	)

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil {
			return fmt.Errorf("flag %q not registered", name)
		}
		if err := v.BindPFlag(key, fl); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) teardown() error {
	if a.cfg == nil {
		return nil
	}
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path, a.registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	_ = a.log.Sync()

	return nil
}

// transformer builds a pwl.Transformer from the loaded configuration.
func (a *app) transformer() (*pwl.Transformer, error) {
	t := a.cfg.Transform

	return pwl.New(
		pwl.WithCycles(t.Cycles),
		pwl.WithOriginalFeatures(t.OriginalFeatures),
		pwl.WithMetric(t.Metric),
		pwl.WithOrder(t.P),
		pwl.WithTau(t.Tau),
		pwl.WithPower(t.Power),
		pwl.WithWorkers(t.Workers),
		pwl.WithLogger(a.log),
		pwl.WithMetrics(a.collector),
	)
}
