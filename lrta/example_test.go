package lrta_test

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/traffic"
)

// ExampleSolve walks into a dead end, learns, and turns back.
func ExampleSolve() {
	g := core.NewGraph()
	_ = g.AddRoad("short", "S", "A", 1)
	_ = g.AddRoad("long", "S", "G", 3)

	trip, err := lrta.Solve(lrta.View{
		Graph:       g,
		Heuristic:   heuristic.Heuristic{"S": 0, "A": 0, "G": 0},
		Source:      "S",
		Destination: "G",
		Observer:    traffic.NewRealized(g, traffic.Day{}),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(trip.Path, trip.Cost)
	// Output: [S A S G] 5
}
