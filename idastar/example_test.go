package idastar_test

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/idastar"
)

// ExampleSearch builds the heuristic from the same snapshot and deepens once.
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
	h, _ := heuristic.Build(g, costs, "D")

	res, err := idastar.Search(g, costs, h, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost, res.Expanded)
	// Output: [A B C D] 3 4
}
