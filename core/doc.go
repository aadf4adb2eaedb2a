// Package core provides the undirected, vertex-labelled, edge-weighted Graph
// consumed by the Persistent Weisfeiler–Lehman pipeline.
//
// The Graph G = (V,E) uses dense integer identifiers:
//
//   - Vertices are numbered 0..n-1 in insertion order and never renumbered.
//   - Edges are numbered 0..m-1 in insertion order; Edges() returns them in
//     that order, which is the tie-break order of every filtration.
//   - Each vertex carries a Label string. An empty label means "unlabelled";
//     refinement substitutes DefaultLabel for graphs without any label.
//   - Each edge carries a float64 Weight (non-negative, finite).
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints; otherwise a second
//	    AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(label string) int                         // O(1)
//	AddEdge(u, v int, weight float64) (int, error)      // O(deg) with multi-edge check
//	Neighbors(id int) ([]int, error)                    // O(deg)
//	Degree(id int) (int, error)                         // O(1)
//	Edges() []Edge                                      // O(E) copy
//	Clone() *Graph                                      // O(V+E)
//	ConnectedComponents() [][]int                       // O(V+E) BFS
//
// Concurrency:
//
//	A single sync.RWMutex guards the vertex and edge catalogs. Readers may run
//	concurrently (the feature pipeline reads one graph from several workers);
//	mutations take the write lock.
package core
