package main

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture writes a triangle and a 3-path, all vertices labelled "a", and a
// targets file, returning their paths.
func fixture(t *testing.T) (graphs []string, labels string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}
	graphs = []string{
		write("triangle.json", `{"labels": ["a","a","a"], "edges": [[0,1],[1,2],[2,0]]}`),
		write("path.json", `{"labels": ["a","a","a"], "edges": [[0,1],[1,2]]}`),
	}
	labels = write("targets.txt", "cyclic\nacyclic\n")

	return graphs, labels
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	recs, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	require.NoError(t, err)

	return recs
}

// TestTransformCmd writes one row per graph with index, target and features.
func TestTransformCmd(t *testing.T) {
	graphs, labels := fixture(t)
	out, err := execute(t, append([]string{"transform", "-n", "1", "--labels", labels}, graphs...)...)
	require.NoError(t, err)

	recs := readCSV(t, out)
	require.Len(t, recs, 3)
	// One label at iteration 0, two after one refinement.
	assert.Equal(t, []string{"graph", "target", "f0", "f1", "f2"}, recs[0])
	assert.Equal(t, "0", recs[1][0])
	assert.Equal(t, "1", recs[2][0])
	// Targets are sorted lexicographically: acyclic=0, cyclic=1.
	assert.Equal(t, "1", recs[1][1])
	assert.Equal(t, "0", recs[2][1])
}

// TestTransformCmd_Select keeps the iteration-0 block only.
func TestTransformCmd_Select(t *testing.T) {
	graphs, _ := fixture(t)
	out, err := execute(t, append([]string{"transform", "-n", "1", "--select", "0"}, graphs...)...)
	require.NoError(t, err)

	recs := readCSV(t, out)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"graph", "f0"}, recs[0])
}

// TestTransformCmd_OutputFile writes the CSV to --output.
func TestTransformCmd_OutputFile(t *testing.T) {
	graphs, _ := fixture(t)
	path := filepath.Join(t.TempDir(), "features.csv")
	out, err := execute(t, append([]string{"transform", "-o", path}, graphs...)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, readCSV(t, string(data)), 3)
}

// TestTransformCmd_Errors covers bad input and configuration.
func TestTransformCmd_Errors(t *testing.T) {
	graphs, labels := fixture(t)

	_, err := execute(t, "transform", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, append([]string{"transform", "--workers", "0"}, graphs...)...)
	assert.Error(t, err)

	_, err = execute(t, append([]string{"transform", "--labels", labels}, graphs[0])...)
	assert.Error(t, err)

	_, err = execute(t, "transform")
	assert.Error(t, err)
}

// TestTransformCmd_MetricsTextfile writes Prometheus metrics on exit.
func TestTransformCmd_MetricsTextfile(t *testing.T) {
	graphs, _ := fixture(t)
	path := filepath.Join(t.TempDir(), "pwl.prom")
	_, err := execute(t, append([]string{"transform", "--workers", "2", "--metrics-textfile", path}, graphs...)...)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pwl_graphs_processed_total 2")
}

// TestTransformCmd_ConfigFile reads options from YAML.
func TestTransformCmd_ConfigFile(t *testing.T) {
	graphs, _ := fixture(t)
	cfg := filepath.Join(t.TempDir(), "pwl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("transform:\n  iterations: 2\n  cycles: true\n"), 0o600))

	out, err := execute(t, append([]string{"transform", "--config", cfg}, graphs...)...)
	require.NoError(t, err)
	recs := readCSV(t, out)
	require.Len(t, recs, 3)
	// Three iteration blocks, each with label and cycle columns.
	assert.Greater(t, len(recs[0]), 1+2*3)
}

// TestDiagramsCmd prints one section per iteration.
func TestDiagramsCmd(t *testing.T) {
	graphs, labels := fixture(t)
	out, err := execute(t, append([]string{"diagrams", "-n", "1", "--bins", "2", "--labels", labels}, graphs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "iteration 0")
	assert.Contains(t, out, "iteration 1")
	assert.Contains(t, out, "class cyclic")
	assert.Contains(t, out, "class acyclic")

	_, err = execute(t, append([]string{"diagrams"}, graphs...)...)
	assert.Error(t, err)
}

// TestMetricCmd prints the adjacency matrix of every iteration.
func TestMetricCmd(t *testing.T) {
	graphs, _ := fixture(t)
	out, err := execute(t, "metric", "-n", "2", graphs[1])
	require.NoError(t, err)

	for _, s := range []string{"iteration 0", "iteration 1", "iteration 2", "euclidean"} {
		assert.Contains(t, out, s)
	}

	_, err = execute(t, append([]string{"metric"}, graphs...)...)
	assert.Error(t, err)
}

// TestDivergenceCmd writes a square matrix.
func TestDivergenceCmd(t *testing.T) {
	graphs, _ := fixture(t)
	out, err := execute(t, append([]string{"divergence", "-n", "1", "--iteration", "1"}, graphs...)...)
	require.NoError(t, err)

	recs := readCSV(t, out)
	require.Len(t, recs, 2)
	assert.Len(t, recs[0], 2)

	_, err = execute(t, append([]string{"divergence", "-n", "1", "--iteration", "5"}, graphs...)...)
	assert.Error(t, err)
}

// TestDivergenceCmd_DisjointSupport writes NaN, not -Inf, for graphs whose
// label distributions share no label.
func TestDivergenceCmd_DisjointSupport(t *testing.T) {
	dir := t.TempDir()
	var graphs []string
	for _, doc := range []string{
		`{"labels": ["a","b","a"], "edges": [[0,1],[1,2]]}`,
		`{"labels": ["c","d","c"], "edges": [[0,1],[1,2]]}`,
	} {
		p := filepath.Join(dir, strconv.Itoa(len(graphs))+".json")
		require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))
		graphs = append(graphs, p)
	}

	out, err := execute(t, append([]string{"divergence", "-n", "1", "--iteration", "1"}, graphs...)...)
	require.NoError(t, err)

	recs := readCSV(t, out)
	require.Len(t, recs, 2)
	for i := range recs {
		require.Len(t, recs[i], 2)
		for j, cell := range recs[i] {
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			assert.False(t, math.IsInf(v, 0), "cell %d,%d", i, j)
			if i == j {
				assert.InDelta(t, 0, v, 1e-12)
			} else {
				assert.True(t, math.IsNaN(v), "cell %d,%d", i, j)
			}
		}
	}
}
