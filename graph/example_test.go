package graph_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/graph"
	"github.com/CrazyPandaXJ/nip/variable"
)

// ExampleGraph_AddEdge builds a two-variable graph with one directed edge
// and reports whether the edge exists in each direction.
func ExampleGraph_AddEdge() {
	a, _ := variable.New(0, "A", "", []string{"0", "1"}, nil)
	b, _ := variable.New(1, "B", "", []string{"0", "1"}, []*variable.Variable{a})

	g := graph.New()
	_ = g.AddVariable(a)
	_ = g.AddVariable(b)
	_ = g.AddEdge(a.ID(), b.ID())

	forward, _ := g.IsChild(a.ID(), b.ID())
	backward, _ := g.IsChild(b.ID(), a.ID())
	fmt.Println(forward, backward)

	// Output:
	// true false
}
