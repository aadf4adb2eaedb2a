// File: label_fn.go
// Role: vertex-label generators. A generator receives the vertex index local
// to the constructor (0..n-1) and the configured RNG (possibly nil).
package builder

import (
	"fmt"
	"math/rand"
)

// LabelFn returns the label of the idx-th vertex of a constructor.
// The empty string leaves the vertex unlabelled.
type LabelFn func(idx int, rng *rand.Rand) string

// UnlabelledFn leaves every vertex unlabelled.
func UnlabelledFn(int, *rand.Rand) string { return "" }

// ConstantLabelFn gives every vertex the same label. Panics on "".
func ConstantLabelFn(label string) LabelFn {
	if label == "" {
		panic("ConstantLabelFn: label must be non-empty")
	}

	return func(int, *rand.Rand) string { return label }
}

// CyclicLabelFn assigns alphabet[idx mod len(alphabet)].
// Panics on an empty alphabet or an empty symbol.
func CyclicLabelFn(alphabet ...string) LabelFn {
	mustAlphabet("CyclicLabelFn", alphabet)

	return func(idx int, _ *rand.Rand) string {
		return alphabet[idx%len(alphabet)]
	}
}

// RandomLabelFn draws labels uniformly from alphabet. Without an RNG it
// falls back to the cyclic assignment. Panics like CyclicLabelFn.
func RandomLabelFn(alphabet ...string) LabelFn {
	mustAlphabet("RandomLabelFn", alphabet)

	return func(idx int, rng *rand.Rand) string {
		if rng == nil {
			return alphabet[idx%len(alphabet)]
		}

		return alphabet[rng.Intn(len(alphabet))]
	}
}

func mustAlphabet(method string, alphabet []string) {
	if len(alphabet) == 0 {
		panic(method + ": alphabet must be non-empty")
	}
	for i, s := range alphabet {
		if s == "" {
			panic(fmt.Sprintf("%s: alphabet[%d] is empty", method, i))
		}
	}
}
