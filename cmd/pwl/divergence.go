// File: cmd/pwl/divergence.go
package main

import (
	"encoding/csv"
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/pwl/divergence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDivergenceCmd(a *app) *cobra.Command {
	var (
		iteration int
		power     float64
	)
	cmd := &cobra.Command{
		Use:   "divergence GRAPH...",
		Short: "Write the pairwise Jensen–Shannon matrix of label distributions at one iteration (NaN where undefined)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.transform(cmd.Context(), args)
			if err != nil {
				return err
			}
			diagrams, ok := r.tr.Diagrams()[iteration]
			if !ok {
				return errors.New("divergence: --iteration out of range")
			}

			classes := 1
			for _, d := range diagrams {
				for _, p := range d {
					classes = max(classes, p.Label+1)
				}
			}

			dists := make([][]float64, len(diagrams))
			for i, d := range diagrams {
				p, err := divergence.ToProbabilityDistribution(d, classes, divergence.WithPower(power))
				if err != nil {
					if !errors.Is(err, divergence.ErrDegenerateDiagram) {
						return err
					}
					a.log.Warn("degenerate diagram", zap.Int("graph", r.batch.GraphIndex[i]), zap.Error(err))
				}
				dists[i] = p
			}

			cw := csv.NewWriter(cmd.OutOrStdout())
			for i := range dists {
				rec := make([]string, len(dists))
				for j := range dists {
					v := math.NaN()
					switch {
					case dists[i] == nil || dists[j] == nil:
					case !divergence.SameSupport(dists[i], dists[j]):
						if i < j {
							a.log.Warn("label distributions differ in support",
								zap.Int("graph", r.batch.GraphIndex[i]),
								zap.Int("other", r.batch.GraphIndex[j]),
							)
						}
					default:
						if v, err = divergence.JensenShannon(dists[i], dists[j]); err != nil {
							return err
						}
					}
					rec[j] = strconv.FormatFloat(v, 'g', 6, 64)
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			cw.Flush()

			return cw.Error()
		},
	}
	cmd.Flags().IntVar(&iteration, "iteration", 0, "iteration whose diagrams are compared")
	cmd.Flags().Float64Var(&power, "distribution-power", divergence.DefaultPower, "exponent applied to persistence")

	return cmd
}
