// Package persistence computes persistence diagrams of edge-weighted graphs
// under the sublevel filtration of their edge weights.
//
// What & Why
//
//   - Vertices appear at time 0. Edges appear at their weight. Whenever an
//     edge joins two connected components, one component "dies": the
//     0-dimensional persistence pair (birth, death) records when it was born
//     and when it was absorbed.
//   - Edges that close a cycle create 1-dimensional features. A graph
//     filtration never fills cycles, so they persist until the end of the
//     filtration.
//
// Algorithm (0-dimensional)
//
//  1. Sort non-loop edges by weight ascending; ties keep edge-id order
//     (sort.SliceStable over core.Graph.Edges()).
//  2. Every vertex is a component with birth 0, represented by itself.
//  3. For each edge (u,v,w): if Find(u) != Find(v) the younger component
//     dies at w. Elder rule: the later birth dies; on equal births the
//     component whose representative has the larger vertex id dies. The
//     pair carries the label of the dying representative. The union keeps
//     the elder representative.
//  4. Components alive at the end yield essential pairs (Death = +Inf, or
//     WithUnpairedValue), appended in ascending representative id.
//
// Cycles (WithCycles(true))
//
//	Every non-loop edge whose endpoints are already connected yields the pair
//	(w, maxW) labelled with its smaller endpoint's label, where maxW is the
//	largest non-loop edge weight of the graph. A triangle with three weights
//	of 1 therefore has exactly one cycle pair (1, 1).
//
// Guarantees
//
//   - Birth ≤ Death for every pair.
//   - Non-essential 0-dim pairs = |V| − #components; essential = #components.
//   - Cycle pairs = |E_nonloop| − |V| + #components.
//   - Output order is filtration order, essentials last.
//
// Union-find
//
//	UnionFind is an arena of parent/rank indices with path halving and union
//	by rank: O(α(V)) amortized per operation.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package persistence
