// Package pwl implements the persistent Weisfeiler–Lehman feature transform.
//
// What & Why
//
//	A dataset of vertex-labelled graphs is refined by Weisfeiler–Lehman
//	iterations (package wl). At every iteration each edge is weighted by the
//	distance between the label multisets of its endpoints (package weights),
//	the weighted graph is filtered by those weights (package persistence), and
//	the resulting diagrams are folded into one block of feature columns.
//	Concatenating the blocks of iterations 0..h gives one row per graph.
//
// Feature layout of iteration block k (C_k = distinct labels at k):
//
//	[ label persistence : C_k ] [ cycle persistence : C_k ]? [ original : C_0 + D ]?
//
//   - label persistence: column c = Σ (τ + pers)^q over the 0-dim pairs
//     labelled c, where pers = Death − Birth and essential pairs use pers = 0.
//   - cycle persistence (WithCycles): same formula over 1-dim pairs.
//   - original features (WithOriginalFeatures, block 0 only): vertex label
//     counts followed by a degree histogram of width D = 1 + max degree.
//
//	With τ = 1, q = 1 and all weights 0 the label persistence block equals
//	the WL subtree label histogram.
//
// Concurrency
//
//	WL refinement is one pass over the whole dataset. Weighting, persistence
//	and aggregation then run per graph on WithWorkers(n) goroutines; each
//	worker writes only its own graph's slot, so output does not depend on n.
//
// Errors
//
//	Option validation failures wrap ErrConfiguration. Transform fails on the
//	first bad graph; TransformBatch skips it, logs a warning and reports it
//	in Batch.Failures.
package pwl
