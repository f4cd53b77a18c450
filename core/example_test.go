package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/airlink/core"
)

// ExampleGraph builds a tiny network and soft-deletes one airport.
func ExampleGraph() {
	g, _ := core.NewGraph(3)
	_ = g.AddVertex("MEL")
	_ = g.AddVertex("SYD")
	_ = g.AddVertex("PER")

	g.AddEdge("MEL", "SYD", 713)
	g.AddEdge("SYD", "PER", 3290)
	fmt.Println("added to unknown:", g.AddEdge("MEL", "ADL", 642))

	if err := g.AddVertex("ADL"); errors.Is(err, core.ErrGraphFull) {
		fmt.Println(err)
	}

	_ = g.DeleteVertex("SYD")
	fmt.Print(g)

	// Output:
	// added to unknown: false
	// core: graph is full
	// Vertex 0: MEL
	// -> SYD (713)
	// Vertex 1:
	// -> PER (3290)
	// Vertex 2: PER
}
