package mosp_test

import (
	"fmt"

	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
)

func ExampleOneToAll() {
	// objectives: distance and exposure
	builder := graph.NewGraphBuilder(2)
	builder.AddEdge(0, 1, 1, 5)
	builder.AddEdge(1, 2, 1, 5)
	builder.AddEdge(0, 2, 4, 1)
	g, err := builder.Build()
	if err != nil {
		panic(err)
	}

	frontiers, err := mosp.OneToAll(g, 0, 2)
	if err != nil {
		panic(err)
	}
	for _, label := range frontiers.Get(2) {
		fmt.Printf("node %v: %v path %v\n", label.Node, label.Cost, label.Path())
	}
	// Output:
	// node 2: [2,10] path [0 1 2]
	// node 2: [4,1] path [0 2]
}

func ExampleNormalize() {
	builder := graph.NewGraphBuilder(2)
	builder.AddEdge(0, 1, 250, 1)
	builder.AddEdge(1, 2, 1000, 3)
	g, _ := builder.Build()

	weight, _ := mosp.Normalize(g)
	fmt.Println(weight.GetEdgeCosts(0), weight.GetEdgeCosts(1))
	// Output:
	// [0 0] [100 100]
}
