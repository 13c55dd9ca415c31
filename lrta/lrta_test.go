package lrta_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsim/builder"
	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/search"
	"github.com/katalvlaran/roadsim/traffic"
	"github.com/katalvlaran/roadsim/ucs"
)

type edge struct {
	a, b string
	w    float64
}

// world returns a graph, its realized observer at normal traffic and that day's costs.
func world(t *testing.T, edges ...edge) (*core.Graph, *traffic.Realized, *cost.Map) {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for i, e := range edges {
		require.NoError(t, g.AddRoad("R"+string(rune('a'+i)), e.a, e.b, e.w))
	}
	obs := traffic.NewRealized(g, traffic.Day{})
	snap, err := obs.Snapshot()
	require.NoError(t, err)

	return g, obs, snap
}

func diamond(t *testing.T) (*core.Graph, *traffic.Realized, *cost.Map) {
	return world(t, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1}, edge{"A", "D", 5})
}

func TestSolve_LookaheadWithExactHeuristicIsOptimal(t *testing.T) {
	g, obs, snap := diamond(t)
	h, err := heuristic.Build(g, snap, "D")
	require.NoError(t, err)

	trip, err := lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "D", Observer: obs},
		lrta.WithSelection(lrta.Lookahead))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, trip.Path)
	assert.InDelta(t, 3.0, trip.Cost, 1e-12)
	assert.Equal(t, 3, trip.Steps)
}

func TestSolve_EstimateFollowsSmallestEstimate(t *testing.T) {
	g, obs, snap := diamond(t)
	h, err := heuristic.Build(g, snap, "D")
	require.NoError(t, err)

	// h(D) = 0 beats h(B) = 2, so the direct road is taken.
	trip, err := lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "D", Observer: obs})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, trip.Path)
	assert.InDelta(t, 5.0, trip.Cost, 1e-12)
}

func TestSolve_LearnsOutOfDeadEnd(t *testing.T) {
	g, obs, _ := world(t, edge{"S", "A", 1}, edge{"S", "G", 3})
	zero := heuristic.Heuristic{"S": 0, "A": 0, "G": 0}

	trip, err := lrta.Solve(lrta.View{Graph: g, Heuristic: zero, Source: "S", Destination: "G", Observer: obs})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "S", "G"}, trip.Path)
	assert.InDelta(t, 5.0, trip.Cost, 1e-12)
	assert.Equal(t, 3, trip.Steps)

	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: zero, Source: "S", Destination: "G", Observer: obs},
		lrta.WithMaxSteps(1))
	assert.ErrorIs(t, err, lrta.ErrStepLimit)
}

func TestSolve_SourceIsDestination(t *testing.T) {
	g, obs, _ := diamond(t)
	trip, err := lrta.Solve(lrta.View{Graph: g, Source: "B", Destination: "B", Observer: obs})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, trip.Path)
	assert.Zero(t, trip.Cost)
}

func TestSolve_Errors(t *testing.T) {
	g, obs, snap := diamond(t)
	h, err := heuristic.Build(g, snap, "D")
	require.NoError(t, err)

	_, err = lrta.Solve(lrta.View{Heuristic: h, Source: "A", Destination: "D", Observer: obs})
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "D"})
	assert.ErrorIs(t, err, lrta.ErrNilObserver)
	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "Q", Observer: obs})
	assert.ErrorIs(t, err, search.ErrInvalidNode)
	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "Q"})
	assert.ErrorIs(t, err, search.ErrInvalidNode, "endpoints are checked before the observer")

	require.NoError(t, g.AddVertex("Island"))
	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "Island", Observer: obs})
	assert.ErrorIs(t, err, search.ErrNoPath)

	// Every neighbor is hopeless under an empty heuristic.
	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: heuristic.Heuristic{}, Source: "A", Destination: "D", Observer: obs})
	assert.ErrorIs(t, err, search.ErrNoPath)
}

type failingObserver struct{}

var errSensor = errors.New("sensor offline")

func (failingObserver) Cost(string, string) (float64, error) { return 0, errSensor }

func TestSolve_UnestimatedBridgeFailsBeforeMoving(t *testing.T) {
	g, _, _ := world(t, edge{"S", "M", 1}, edge{"M", "G", 1})
	gap := heuristic.Heuristic{"S": 2, "G": 0}

	// The pre-flight rejects the trip before the observer is ever asked.
	_, err := lrta.Solve(lrta.View{Graph: g, Heuristic: gap, Source: "S", Destination: "G", Observer: failingObserver{}},
		lrta.WithSelection(lrta.Lookahead))
	assert.ErrorIs(t, err, search.ErrNoPath)
	assert.NotErrorIs(t, err, errSensor)
}

func TestSolve_ObserverErrorAborts(t *testing.T) {
	g, _, snap := diamond(t)
	h, err := heuristic.Build(g, snap, "D")
	require.NoError(t, err)

	_, err = lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "A", Destination: "D", Observer: failingObserver{}})
	assert.ErrorIs(t, err, errSensor)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { lrta.WithMaxSteps(0) })
	assert.Panics(t, func() { lrta.WithSelection(lrta.Selection(7)) })
	assert.Equal(t, "lookahead", lrta.Lookahead.String())
}

// TestSolve_ExactHeuristicMatchesUCS checks the online walk against the planner
// that knows the realized costs in advance.
func TestSolve_ExactHeuristicMatchesUCS(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		g, err := builder.BuildNetwork(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostRange(1, 25), builder.WithParallelRoads(0.3)},
			builder.RandomConnected(14, 0.25),
		)
		require.NoError(t, err)
		actual := make(traffic.Day)
		for i, r := range g.Roads() {
			actual[r.Name] = traffic.Level(i % 3)
		}
		obs := traffic.NewRealized(g, actual)
		snap, err := obs.Snapshot()
		require.NoError(t, err)
		h, err := heuristic.Build(g, snap, "N13")
		require.NoError(t, err)

		want, err := ucs.Search(g, snap, "N0", "N13")
		require.NoError(t, err)
		trip, err := lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "N0", Destination: "N13", Observer: obs},
			lrta.WithSelection(lrta.Lookahead))
		require.NoError(t, err)

		assert.InDelta(t, want.Cost, trip.Cost, 1e-9, "seed %d", seed)
		realized, err := obs.PathCost(trip.Path)
		require.NoError(t, err)
		assert.InDelta(t, trip.Cost, realized, 1e-9)
	}
}

func TestSolve_EstimateOnPathMatchesUCS(t *testing.T) {
	g, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(4)}, builder.Path(8))
	require.NoError(t, err)
	obs := traffic.NewRealized(g, traffic.Day{})
	snap, err := obs.Snapshot()
	require.NoError(t, err)
	h, err := heuristic.Build(g, snap, "N7")
	require.NoError(t, err)

	want, err := ucs.Search(g, snap, "N0", "N7")
	require.NoError(t, err)
	trip, err := lrta.Solve(lrta.View{Graph: g, Heuristic: h, Source: "N0", Destination: "N7", Observer: obs})
	require.NoError(t, err)
	assert.Equal(t, want.Path, trip.Path)
	assert.InDelta(t, want.Cost, trip.Cost, 1e-9)
}
