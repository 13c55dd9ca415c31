package ucs_test

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/ucs"
)

// ExampleSearch finds the three-hop route that beats the direct road.
func ExampleSearch() {
	g := core.NewGraph()
	costs := cost.NewMap()
	for _, e := range []struct {
		road, a, b string
		w          float64
	}{
		{"R1", "A", "B", 1}, {"R2", "B", "C", 1}, {"R3", "C", "D", 1}, {"R4", "A", "D", 5},
	} {
		_ = g.AddRoad(e.road, e.a, e.b, e.w)
		_ = costs.Set(e.a, e.b, e.w)
	}

	res, err := ucs.Search(g, costs, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost, res.Expanded)
	// Output: [A B C D] 3 4
}
