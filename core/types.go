// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - an id outside 0..n-1 was referenced.
//	ErrEdgeNotFound        - an edge id outside 0..m-1 was referenced.
//	ErrBadWeight           - weight is negative, NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrLabelCount          - label slice length differs from vertex count.
package core

import (
	"errors"
	"sync"
)

// DefaultLabel is the uniform label assigned to every vertex of a graph that
// carries no labels at all. Refinement then reduces to degree-based checks.
const DefaultLabel = "0"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex id.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge id.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrLabelCount indicates that a label slice does not have one entry per vertex.
	ErrLabelCount = errors.New("core: label count does not match vertex count")
)

// Vertex is a labelled node. ID equals its position in the graph.
type Vertex struct {
	// ID is the dense identifier 0..n-1.
	ID int

	// Label is the intrinsic vertex label; "" means unlabelled.
	Label string
}

// Edge is an undirected connection between From and To.
//
// From ≤ To is NOT enforced; callers that need a canonical orientation use
// Endpoints().
type Edge struct {
	// ID is the dense identifier 0..m-1 in insertion order.
	ID int

	// From is one endpoint.
	From int

	// To is the other endpoint.
	To int

	// Weight is the filtration value of the edge.
	Weight float64
}

// Endpoints returns the edge endpoints ordered (min, max).
func (e Edge) Endpoints() (int, int) {
	if e.From <= e.To {
		return e.From, e.To
	}

	return e.To, e.From
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory undirected graph.
//
// mu guards vertices, edges and incidence. incidence[v] lists the ids of the
// edges touching v in insertion order; a self-loop appears once.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertices  []Vertex
	edges     []Edge
	incidence [][]int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
