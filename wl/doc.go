// Package wl implements Weisfeiler–Lehman label refinement with label
// compression.
//
// What & Why
//
//   - Each refinement step replaces the label of a vertex v by the multiset
//     {label(v)} ∪ {label(u) : u adjacent to v}. The multiset is serialized
//     canonically (own label first, then neighbor labels ascending, joined
//     with "-") and compressed to a small integer.
//   - After k steps the compressed label of v identifies the isomorphism
//     class of its depth-k unfolding tree (up to the WL test's power).
//
// Compression scope
//
//	One Compressor is shared by ALL graphs of an iteration, and a fresh one is
//	used for every iteration. Compressed labels are therefore comparable
//	across graphs of the same iteration (feature columns line up over the
//	whole dataset) but carry no meaning across iterations.
//
// Determinism
//
//	Integers are handed out in first-occurrence order while scanning graphs
//	in input order and vertices by id. The same input always yields the same
//	labels.
//
// Errors
//
//   - ErrNilGraph: a nil graph was supplied.
//   - ErrEmptyGraph: a graph has zero vertices.
//   - ErrMissingLabel: a graph labels some vertices but not all.
//   - ErrBadIterations: negative iteration count.
package wl
