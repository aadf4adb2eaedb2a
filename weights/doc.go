// Package weights turns refined vertex labels into edge weights.
//
// Every vertex v is represented by the count vector of its WL multiset
// (own label plus neighbor labels; a one-hot vector at iteration 0). The
// weight of an edge u-v is the distance between the two count vectors under
// the configured Metric:
//
//	minkowski  (‖x−y‖_p, p ≥ 1, default p = 2; p = +Inf is Chebyshev)
//	euclidean  (p = 2)
//	manhattan  (p = 1)
//	chebyshev  (p = +Inf)
//	jaccard    (1 − Σ min(x,y) / Σ max(x,y))
//
// All metrics are symmetric and return 0 iff the two multisets coincide.
// Self-loops get weight 0; the persistence filtration ignores them.
//
// The L-p family is computed with gonum's floats.Distance.
package weights
