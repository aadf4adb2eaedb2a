// File: cmd/pwl/transform.go
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/pwl/graphio"
	"github.com/katalvlaran/pwl/pwl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// run is the shared outcome of loading a dataset and transforming it.
type run struct {
	data  *graphio.Dataset
	batch *pwl.Batch
	tr    *pwl.Transformer
	// codes[r] is the encoded target of feature row r (nil without labels).
	codes   []int
	classes []string
}

// transform loads the dataset and runs the configured transform.
func (a *app) transform(ctx context.Context, paths []string) (*run, error) {
	data, err := graphio.Load(paths, a.labels)
	if err != nil {
		return nil, err
	}
	a.log.Info("read dataset", zap.Int("graphs", len(data.Graphs)), zap.Int("labels", len(data.Targets)))

	tr, err := a.transformer()
	if err != nil {
		return nil, err
	}
	if a.cfg.Transform.Cycles {
		a.log.Info("using cycle persistence")
	}

	var b *pwl.Batch
	if a.cfg.Transform.SkipFailures {
		b, err = tr.TransformBatch(ctx, data.Graphs, a.cfg.Transform.Iterations)
	} else {
		X, cols, terr := tr.TransformContext(ctx, data.Graphs, a.cfg.Transform.Iterations)
		err = terr
		if err == nil {
			b = &pwl.Batch{Features: X, ColumnsPerIteration: cols, GraphIndex: identity(len(data.Graphs))}
		}
	}
	if err != nil {
		return nil, err
	}
	rows, cols := b.Features.Dims()
	a.log.Info("obtained feature matrix", zap.Int("rows", rows), zap.Int("columns", cols),
		zap.Ints("columns_per_iteration", b.ColumnsPerIteration))

	r := &run{data: data, batch: b, tr: tr}
	if data.Targets != nil {
		all, classes := graphio.EncodeTargets(data.Targets)
		r.classes = classes
		for _, gi := range b.GraphIndex {
			r.codes = append(r.codes, all[gi])
		}
	}

	return r, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func newTransformCmd(a *app) *cobra.Command {
	var (
		output string
		upTo   int
	)
	cmd := &cobra.Command{
		Use:   "transform GRAPH...",
		Short: "Write the feature matrix as CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.transform(cmd.Context(), args)
			if err != nil {
				return err
			}
			X := r.batch.Features
			if upTo >= 0 {
				if X, err = pwl.SelectIterations(X, r.batch.ColumnsPerIteration, upTo); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return writeFeatures(w, r, X)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output file (default stdout)")
	cmd.Flags().IntVar(&upTo, "select", -1, "keep only iteration blocks 0..k")

	return cmd
}

// featureMatrix is the subset of *mat.Dense used for CSV output.
type featureMatrix interface {
	Dims() (r, c int)
	At(i, j int) float64
}

// writeFeatures writes one CSV row per graph: input index, target (if any),
// then the features.
func writeFeatures(w io.Writer, r *run, X featureMatrix) error {
	rows, cols := X.Dims()
	cw := csv.NewWriter(w)

	header := []string{"graph"}
	if r.codes != nil {
		header = append(header, "target")
	}
	for j := 0; j < cols; j++ {
		header = append(header, "f"+strconv.Itoa(j))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		rec := []string{strconv.Itoa(r.batch.GraphIndex[i])}
		if r.codes != nil {
			rec = append(rec, strconv.Itoa(r.codes[i]))
		}
		for j := 0; j < cols; j++ {
			rec = append(rec, strconv.FormatFloat(X.At(i, j), 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing features: %w", err)
	}

	return nil
}
