// File: cmd/pwl/diagrams.go
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pwl/diagnostics"
	"github.com/spf13/cobra"
)

func newDiagramsCmd(a *app) *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "diagrams GRAPH...",
		Short: "Summarise vertex destruction values per iteration and target class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.labels == "" {
				return errors.New("diagrams: --labels is required")
			}
			r, err := a.transform(cmd.Context(), args)
			if err != nil {
				return err
			}
			reports, err := diagnostics.SummarizeAll(r.tr.Diagrams(), r.codes, bins)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rep := range reports {
				fmt.Fprintf(out, "iteration %d  bins %s\n", rep.Iteration, formatFloats(rep.Dividers))
				for _, c := range rep.Classes {
					fmt.Fprintf(out, "  class %-8s n=%-6d mean=%-10.4g std=%-10.4g min=%-10.4g max=%-10.4g hist=%s\n",
						r.classes[c.Class], c.Count, c.Mean, c.Std, c.Min, c.Max, formatFloats(c.Histogram))
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", diagnostics.DefaultBins, "histogram bins")

	return cmd
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.4g", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
