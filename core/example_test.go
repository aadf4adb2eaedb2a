package core_test

import (
	"fmt"

	"github.com/katalvlaran/pwl/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create a graph and add three labelled vertices.
	g := core.NewGraph()
	a := g.AddVertex("C")
	b := g.AddVertex("O")
	c := g.AddVertex("C")

	// 2) Connect them into a path a-b-c.
	_, _ = g.AddEdge(a, b, 0)
	_, _ = g.AddEdge(b, c, 0)

	// 3) Inspect.
	nbs, _ := g.Neighbors(b)
	deg, _ := g.Degree(b)
	fmt.Println("labels:", g.Labels())
	fmt.Println("neighbors of b:", nbs, "degree:", deg)
	fmt.Println("components:", g.ConnectedComponents())

	// Output:
	// labels: [C O C]
	// neighbors of b: [0 2] degree: 2
	// components: [[0 1 2]]
}
