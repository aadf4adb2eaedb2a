// Package diagnostics summarises vertex destruction values (0-dim deaths)
// per iteration and per target class, with a histogram over bins shared by
// all classes of an iteration.
package diagnostics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/pwl/persistence"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the histogram resolution used by the CLI.
const DefaultBins = 10

var (
	// ErrInputMismatch indicates differing numbers of diagrams and targets.
	ErrInputMismatch = errors.New("diagnostics: number of diagrams and targets differ")

	// ErrBadBins indicates a histogram with fewer than one bin.
	ErrBadBins = errors.New("diagnostics: bins must be >= 1")

	// ErrNoData indicates that no diagram has a finite pair.
	ErrNoData = errors.New("diagnostics: no finite destruction values")
)

// ClassSummary describes the destruction values of one target class.
type ClassSummary struct {
	Class int
	Count int
	Mean  float64
	Std   float64 // population standard deviation
	Min   float64
	Max   float64
	// Histogram[i] counts values in [Dividers[i], Dividers[i+1]).
	Histogram []float64
}

// Report is the summary of one iteration.
type Report struct {
	Iteration int
	Dividers  []float64
	Classes   []ClassSummary // ascending Class
}

// Summarize builds the report of one iteration. diagrams[i] belongs to the
// graph with target class targets[i]; essential pairs are ignored.
func Summarize(iteration int, diagrams []persistence.Diagram, targets []int, bins int) (*Report, error) {
	if len(diagrams) != len(targets) {
		return nil, fmt.Errorf("%d diagrams, %d targets: %w", len(diagrams), len(targets), ErrInputMismatch)
	}
	if bins < 1 {
		return nil, fmt.Errorf("bins=%d: %w", bins, ErrBadBins)
	}

	byClass := map[int][]float64{}
	var all []float64
	for i, d := range diagrams {
		deaths := d.Deaths()
		byClass[targets[i]] = append(byClass[targets[i]], deaths...)
		all = append(all, deaths...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("iteration %d: %w", iteration, ErrNoData)
	}

	dividers := makeDividers(floats.Min(all), floats.Max(all), bins)
	rep := &Report{Iteration: iteration, Dividers: dividers}

	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	for _, c := range classes {
		rep.Classes = append(rep.Classes, summarize(c, byClass[c], dividers))
	}

	return rep, nil
}

// SummarizeAll builds one report per iteration, ascending.
func SummarizeAll(diagrams map[int][]persistence.Diagram, targets []int, bins int) ([]*Report, error) {
	its := make([]int, 0, len(diagrams))
	for k := range diagrams {
		its = append(its, k)
	}
	sort.Ints(its)

	out := make([]*Report, 0, len(its))
	for _, k := range its {
		r, err := Summarize(k, diagrams[k], targets, bins)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// makeDividers spans [lo, hi] with bins equal-width intervals. The last
// divider is nudged up so that hi falls inside the last bin.
func makeDividers(lo, hi float64, bins int) []float64 {
	if hi == lo {
		hi = lo + 1
	}
	div := floats.Span(make([]float64, bins+1), lo, hi)
	div[bins] = math.Nextafter(hi, math.Inf(1))

	return div
}

func summarize(class int, values []float64, dividers []float64) ClassSummary {
	s := ClassSummary{Class: class, Count: len(values), Histogram: make([]float64, len(dividers)-1)}
	if len(values) == 0 {
		return s
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.Mean, s.Std = stat.PopMeanStdDev(sorted, nil)
	s.Min, s.Max = sorted[0], sorted[len(sorted)-1]
	stat.Histogram(s.Histogram, dividers, sorted, nil)

	return s
}
