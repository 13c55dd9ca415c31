package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
)

// ExampleGraph_RoadsBetween shows two named roads joining the same pair of nodes.
func ExampleGraph_RoadsBetween() {
	g := core.NewGraph(core.WithMultiEdges())
	_ = g.AddRoad("Highway", "Athens", "Corinth", 80)
	_ = g.AddRoad("OldRoad", "Corinth", "Athens", 95)

	for _, r := range g.RoadsBetween("Athens", "Corinth") {
		fmt.Printf("%s %.0f\n", r.Name, r.Cost)
	}
	nbs, _ := g.NeighborIDs("Athens")
	fmt.Println(nbs)
	// Output:
	// Highway 80
	// OldRoad 95
	// [Corinth]
}
