package divergence_test

import (
	"fmt"

	"github.com/katalvlaran/pwl/divergence"
	"github.com/katalvlaran/pwl/persistence"
)

// ExampleToProbabilityDistribution compares two small labelled diagrams.
func ExampleToProbabilityDistribution() {
	a := persistence.Diagram{{Death: 1, Label: 0}, {Death: 1, Label: 1}}
	b := persistence.Diagram{{Death: 1, Label: 0}, {Death: 1, Label: 1}, {Death: 1, Label: 1}}

	p, _ := divergence.ToProbabilityDistribution(a, 2)
	q, _ := divergence.ToProbabilityDistribution(b, 2)
	js, _ := divergence.JensenShannon(p, q)

	fmt.Printf("p=%.3f q=%.3f\n", p, q)
	fmt.Printf("js=%.4f\n", js)

	// Output:
	// p=[0.500 0.500] q=[0.333 0.667]
	// js=-0.0578
}
