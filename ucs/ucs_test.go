package ucs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsim/builder"
	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/search"
	"github.com/katalvlaran/roadsim/traffic"
	"github.com/katalvlaran/roadsim/ucs"
)

type edge struct {
	a, b string
	w    float64
}

func network(t *testing.T, edges ...edge) (*core.Graph, *cost.Map) {
	t.Helper()
	g := core.NewGraph()
	m := cost.NewMap()
	for i, e := range edges {
		require.NoError(t, g.AddRoad("R"+string(rune('a'+i)), e.a, e.b, e.w))
		require.NoError(t, m.Set(e.a, e.b, e.w))
	}

	return g, m
}

func TestSearch_PrefersCheaperLongerPath(t *testing.T) {
	g, m := network(t, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "D", 1}, edge{"A", "D", 5})

	res, err := ucs.Search(g, m, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, 4, res.Expanded)
}

func TestSearch_ReplacesCostlierPendingParent(t *testing.T) {
	// C is first discovered through A at 10 and later improved through B at 2.
	g, m := network(t, edge{"A", "C", 10}, edge{"A", "B", 1}, edge{"B", "C", 1}, edge{"C", "G", 1})

	res, err := ucs.Search(g, m, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "G"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g, m := network(t, edge{"A", "B", 1})
	res, err := ucs.Search(g, m, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_Errors(t *testing.T) {
	g, m := network(t, edge{"A", "B", 1})
	require.NoError(t, g.AddVertex("Island"))

	_, err := ucs.Search(nil, m, "A", "B")
	assert.ErrorIs(t, err, search.ErrNilGraph)
	_, err = ucs.Search(g, m, "X", "B")
	assert.ErrorIs(t, err, search.ErrInvalidNode)
	_, err = ucs.Search(g, m, "A", "Y")
	assert.ErrorIs(t, err, search.ErrInvalidNode)
	_, err = ucs.Search(g, nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrMissingEdgeCost)

	// Endpoints are checked before the cost map.
	_, err = ucs.Search(g, nil, "X", "B")
	assert.ErrorIs(t, err, search.ErrInvalidNode)
	assert.NotErrorIs(t, err, search.ErrMissingEdgeCost)
	_, err = ucs.Search(nil, nil, "X", "B")
	assert.ErrorIs(t, err, search.ErrNilGraph)

	_, err = ucs.Search(g, m, "A", "Island")
	assert.ErrorIs(t, err, search.ErrNoPath)

	m.Reset()
	_, err = ucs.Search(g, m, "A", "B")
	assert.ErrorIs(t, err, search.ErrMissingEdgeCost)
}

func TestSearch_TieBreakIsDeterministic(t *testing.T) {
	g, m := network(t, edge{"S", "X", 1}, edge{"S", "Y", 1}, edge{"X", "G", 1}, edge{"Y", "G", 1})
	first, err := ucs.Search(g, m, "S", "G")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ucs.Search(g, m, "S", "G")
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
	assert.Equal(t, []string{"S", "X", "G"}, first.Path)
}

// TestSearch_MatchesBruteForce compares UCS with exhaustive simple-path enumeration.
func TestSearch_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.BuildNetwork(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostRange(0, 9), builder.WithParallelRoads(0.3)},
			builder.RandomConnected(7, 0.35),
		)
		require.NoError(t, err)
		m, err := traffic.Optimistic(g)
		require.NoError(t, err)

		vertices := g.Vertices()
		start, goal := vertices[0], vertices[len(vertices)-1]
		res, err := ucs.Search(g, m, start, goal)
		require.NoError(t, err)

		pathCost, err := search.PathCost(res.Path, m)
		require.NoError(t, err)
		assert.InDelta(t, res.Cost, pathCost, 1e-9, "seed %d: reported cost must equal path cost", seed)
		assert.InDelta(t, bruteForce(t, g, m, start, goal), res.Cost, 1e-9, "seed %d", seed)
		assert.Equal(t, start, res.Path[0])
		assert.Equal(t, goal, res.Path[len(res.Path)-1])
	}
}

func bruteForce(t *testing.T, g *core.Graph, m *cost.Map, start, goal string) float64 {
	t.Helper()
	best := math.Inf(1)
	onPath := map[string]bool{start: true}
	var walk func(u string, acc float64)
	walk = func(u string, acc float64) {
		if u == goal {
			best = math.Min(best, acc)
			return
		}
		nbs, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, v := range nbs {
			if onPath[v] {
				continue
			}
			w, err := m.Lookup(u, v)
			require.NoError(t, err)
			onPath[v] = true
			walk(v, acc+w)
			onPath[v] = false
		}
	}
	walk(start, 0)

	return best
}
