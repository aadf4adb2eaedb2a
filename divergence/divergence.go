package divergence

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// KullbackLeibler returns Σ_{p_i ≠ 0} p_i · log(q_i / p_i).
//
// The value is the negation of gonum's stat.KullbackLeibler and is ≤ 0 for
// probability vectors. q_i must be positive wherever p_i is; otherwise the
// result is −Inf.
func KullbackLeibler(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("len(p)=%d len(q)=%d: %w", len(p), len(q), ErrLengthMismatch)
	}

	return -stat.KullbackLeibler(p, q), nil
}

// JensenShannon returns ½ (KL(p, q) + KL(q, p)).
// Same support precondition as KullbackLeibler, in both directions.
func JensenShannon(p, q []float64) (float64, error) {
	pq, err := KullbackLeibler(p, q)
	if err != nil {
		return 0, err
	}
	qp, err := KullbackLeibler(q, p)
	if err != nil {
		return 0, err
	}

	return 0.5 * (pq + qp), nil
}

// SameSupport reports whether p and q have equal length and are positive at
// exactly the same indices, the condition under which JensenShannon is finite.
func SameSupport(p, q []float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if (p[i] > 0) != (q[i] > 0) {
			return false
		}
	}

	return true
}

// Entropy returns the Shannon entropy of p in nats; zero entries contribute nothing.
func Entropy(p []float64) float64 {
	return stat.Entropy(p)
}
