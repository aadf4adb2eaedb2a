// File: cmd/pwl/metric.go
package main

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
	"github.com/katalvlaran/pwl/graphio"
	"github.com/katalvlaran/pwl/weights"
	"github.com/katalvlaran/pwl/wl"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newMetricCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metric GRAPH",
		Short: "Print the weighted adjacency matrix of one graph at every iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadGraph(args[0])
			if err != nil {
				return err
			}
			t := a.cfg.Transform
			res, err := wl.Run([]*core.Graph{g}, t.Iterations)
			if err != nil {
				return err
			}
			as, err := weights.NewAssigner(weights.WithMetric(t.Metric), weights.WithOrder(t.P))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for k := 0; k <= res.NumIterations(); k++ {
				lab, err := res.Labeling(k, 0)
				if err != nil {
					return err
				}
				wg, err := as.Assign(g, lab)
				if err != nil {
					return err
				}
				adj, err := weights.Adjacency(wg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "iteration %d (%s)\n", k, as.Metric().Name())
				fmt.Fprintf(out, "%v\n\n", mat.Formatted(adj, mat.Squeeze()))
			}

			return nil
		},
	}
}
