// Package divergence turns labelled persistence diagrams into discrete
// probability distributions over labels and compares them.
//
//   - ToProbabilityDistribution: bucket[label] += (Death − Birth)^power,
//     normalised to sum to one. Essential pairs carry no finite persistence
//     and are skipped.
//   - KullbackLeibler: Σ_{p_i ≠ 0} p_i · log(q_i / p_i). This sign
//     convention yields values ≤ 0 for valid distributions.
//   - JensenShannon: ½ (KL(p, q) + KL(q, p)), symmetric in its arguments.
//   - Entropy: Shannon entropy in nats, for diagnostics.
//
// Preconditions (not checked):
//
//	KullbackLeibler requires q_i > 0 wherever p_i > 0. A zero q_i yields a
//	non-finite result (−Inf) instead of an error. Callers that need a finite
//	value must smooth or restrict the support first.
package divergence
