// File: labels.go
// Role: classification targets and datasets.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pwl/core"
)

// ReadLabels reads one target per non-blank line.
func ReadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	targets, err := DecodeLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return targets, nil
}

// DecodeLabels reads one target per non-blank line from r.
func DecodeLabels(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeTargets maps targets to 0..K-1 by the sorted order of their
// distinct values and returns the codes and the sorted classes. Values
// that all parse as numbers sort numerically, otherwise lexically.
func EncodeTargets(targets []string) ([]int, []string) {
	seen := make(map[string]struct{}, len(targets))
	classes := make([]string, 0)
	for _, t := range targets {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			classes = append(classes, t)
		}
	}

	numeric := make([]float64, len(classes))
	allNumeric := true
	for i, c := range classes {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			allNumeric = false
			break
		}
		numeric[i] = f
	}
	if allNumeric {
		sort.Sort(byValue{classes, numeric})
	} else {
		sort.Strings(classes)
	}

	code := make(map[string]int, len(classes))
	for i, c := range classes {
		code[c] = i
	}
	out := make([]int, len(targets))
	for i, t := range targets {
		out[i] = code[t]
	}

	return out, classes
}

type byValue struct {
	names  []string
	values []float64
}

func (b byValue) Len() int           { return len(b.names) }
func (b byValue) Less(i, j int) bool { return b.values[i] < b.values[j] }
func (b byValue) Swap(i, j int) {
	b.names[i], b.names[j] = b.names[j], b.names[i]
	b.values[i], b.values[j] = b.values[j], b.values[i]
}

// Dataset pairs graphs with their classification targets.
type Dataset struct {
	Paths   []string
	Graphs  []*core.Graph
	Targets []string
}

// Validate reports ErrInputMismatch if targets are present and their
// count differs from the number of graphs.
func (d *Dataset) Validate() error {
	if d.Targets != nil && len(d.Targets) != len(d.Graphs) {
		return fmt.Errorf("%d graphs, %d targets: %w", len(d.Graphs), len(d.Targets), ErrInputMismatch)
	}

	return nil
}

// Load reads every graph file and, if labelsPath is non-empty, the targets.
// The result is validated before it is returned.
func Load(paths []string, labelsPath string) (*Dataset, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	d := &Dataset{Paths: paths, Graphs: make([]*core.Graph, 0, len(paths))}
	for _, p := range paths {
		g, err := ReadGraph(p)
		if err != nil {
			return nil, err
		}
		d.Graphs = append(d.Graphs, g)
	}
	if labelsPath != "" {
		targets, err := ReadLabels(labelsPath)
		if err != nil {
			return nil, err
		}
		d.Targets = targets
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}
