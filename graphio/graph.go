// File: graph.go
// Role: graph readers for the JSON and edge-list formats.
package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pwl/core"
)

// Supported formats.
const (
	FormatJSON     = "json"
	FormatEdgeList = "edgelist"
)

// MaxVertices bounds vertex ids and declared vertex counts. The vertex
// count of a file is derived from its largest id, so without a bound a
// single line could force an arbitrarily large allocation.
const MaxVertices = 1 << 24

// checkVertex rejects ids and counts that are negative or above MaxVertices.
func checkVertex(what string, v int) error {
	if v < 0 {
		return fmt.Errorf("%w: negative %s %d", ErrFormat, what, v)
	}
	if v > MaxVertices {
		return fmt.Errorf("%w: %s %d > %d", ErrTooManyVertices, what, v, MaxVertices)
	}

	return nil
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".txt", ".edges", ".el", ".edgelist":
		return FormatEdgeList, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ReadGraph reads one graph file.
func ReadGraph(path string) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g *core.Graph
	if format == FormatJSON {
		g, err = DecodeJSON(f)
	} else {
		g, err = DecodeEdgeList(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// jsonGraph is the on-disk JSON layout.
type jsonGraph struct {
	Vertices *int      `json:"vertices,omitempty"`
	Labels   []string  `json:"labels,omitempty"`
	Edges    [][2]int  `json:"edges"`
	Weights  []float64 `json:"weights,omitempty"`
}

// DecodeJSON reads a graph in the JSON format.
func DecodeJSON(r io.Reader) (*core.Graph, error) {
	var doc jsonGraph
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if doc.Weights != nil && len(doc.Weights) != len(doc.Edges) {
		return nil, fmt.Errorf("%w: %d weights for %d edges", ErrFormat, len(doc.Weights), len(doc.Edges))
	}

	if err := checkVertex("label count", len(doc.Labels)); err != nil {
		return nil, err
	}
	n := len(doc.Labels)
	for i, e := range doc.Edges {
		for _, v := range e {
			if err := checkVertex("vertex id", v); err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
		}
		n = max(n, e[0]+1, e[1]+1)
	}
	if doc.Vertices != nil {
		if err := checkVertex("vertex count", *doc.Vertices); err != nil {
			return nil, err
		}
		if *doc.Vertices < n {
			return nil, fmt.Errorf("%w: vertices=%d but ids/labels need %d", ErrFormat, *doc.Vertices, n)
		}
		n = *doc.Vertices
	}

	g := newGraph(n, doc.Labels)
	for i, e := range doc.Edges {
		w := 0.0
		if doc.Weights != nil {
			w = doc.Weights[i]
		}
		if _, err := g.AddEdge(e[0], e[1], w); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrFormat, i, err)
		}
	}

	return g, nil
}

// EncodeJSON writes g in the JSON format accepted by DecodeJSON.
func EncodeJSON(w io.Writer, g *core.Graph) error {
	n := g.VertexCount()
	doc := jsonGraph{Vertices: &n, Edges: [][2]int{}}
	if g.HasLabels() {
		doc.Labels = g.Labels()
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]int{e.From, e.To})
		doc.Weights = append(doc.Weights, e.Weight)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

type rawEdge struct {
	u, v int
	w    float64
	line int
}

// DecodeEdgeList reads a graph in the edge-list format.
func DecodeEdgeList(r io.Reader) (*core.Graph, error) {
	var (
		edges    []rawEdge
		labels   = map[int]string{}
		declared = -1
		n        int
	)

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			fields := strings.Fields(strings.TrimPrefix(line, "#"))
			switch {
			case len(fields) == 2 && fields[0] == "vertices":
				v, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: bad vertex count %q", ErrFormat, lineNo, fields[1])
				}
				if err := checkVertex("vertex count", v); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				declared = v
			case len(fields) == 3 && fields[0] == "label":
				id, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: bad vertex id %q", ErrFormat, lineNo, fields[1])
				}
				if err := checkVertex("vertex id", id); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				labels[id] = fields[2]
				n = max(n, id+1)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"u v [w]\", got %q", ErrFormat, lineNo, line)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("%w: line %d: bad endpoints %q", ErrFormat, lineNo, line)
		}
		for _, id := range []int{u, v} {
			if err := checkVertex("vertex id", id); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
		e := rawEdge{u: u, v: v, line: lineNo}
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrFormat, lineNo, fields[2])
			}
			e.w = w
		}
		edges = append(edges, e)
		n = max(n, u+1, v+1)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if declared >= 0 {
		if declared < n {
			return nil, fmt.Errorf("%w: vertices=%d but ids need %d", ErrFormat, declared, n)
		}
		n = declared
	}

	var ls []string
	if len(labels) > 0 {
		ls = make([]string, n)
		for id, l := range labels {
			ls[id] = l
		}
	}
	g := newGraph(n, ls)
	for _, e := range edges {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, e.line, err)
		}
	}

	return g, nil
}

// newGraph returns a loop-tolerant graph with n vertices and the given labels.
func newGraph(n int, labels []string) *core.Graph {
	g := core.NewGraph(core.WithLoops())
	for v := 0; v < n; v++ {
		l := ""
		if v < len(labels) {
			l = labels[v]
		}
		g.AddVertex(l)
	}

	return g
}
