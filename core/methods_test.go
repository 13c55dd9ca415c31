package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsim/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddRoad_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddRoad("", "A", "B", 1), core.ErrEmptyRoadName)
	assert.ErrorIs(t, g.AddRoad("R1", "", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddRoad("R1", "A", "B", -1), core.ErrNegativeCost)
	assert.ErrorIs(t, g.AddRoad("R1", "A", "B", math.NaN()), core.ErrNegativeCost)
	assert.ErrorIs(t, g.AddRoad("R1", "A", "A", 1), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddRoad("R1", "A", "B", 1))
	assert.ErrorIs(t, g.AddRoad("R1", "B", "C", 1), core.ErrDuplicateRoad)
	assert.ErrorIs(t, g.AddRoad("R2", "B", "A", 2), core.ErrMultiEdgeNotAllowed)
}

func TestGraph_SymmetricAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddRoad("R1", "A", "B", 4))
	require.NoError(t, g.AddRoad("R2", "B", "A", 3))
	require.NoError(t, g.AddRoad("R3", "B", "C", 1))

	for _, v := range g.Vertices() {
		nbs, err := g.NeighborIDs(v)
		require.NoError(t, err)
		for _, u := range nbs {
			back, err := g.NeighborIDs(u)
			require.NoError(t, err)
			assert.Contains(t, back, v, "adjacency of %s must contain %s", u, v)
		}
	}

	nbs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbs)

	roads := g.RoadsBetween("B", "A")
	require.Len(t, roads, 2)
	assert.Equal(t, "R1", roads[0].Name)
	assert.Equal(t, "R2", roads[1].Name)
	assert.True(t, roads[0].Connects("B", "A"))
	assert.Empty(t, g.RoadsBetween("A", "C"))
	assert.True(t, g.HasEdge("C", "B"))
	assert.False(t, g.HasEdge("A", "C"))
}

func TestGraph_NeighborIDs_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.NeighborIDs("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_RoadLookup(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("Main", "A", "B", 7.5))

	r, err := g.Road("Main")
	require.NoError(t, err)
	assert.Equal(t, core.Road{Name: "Main", From: "A", To: "B", Cost: 7.5}, r)

	other, ok := r.Other("B")
	assert.True(t, ok)
	assert.Equal(t, "A", other)
	_, ok = r.Other("Z")
	assert.False(t, ok)

	_, err = g.Road("Nope")
	assert.ErrorIs(t, err, core.ErrRoadNotFound)
}

func TestGraph_LoopsAllowed(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddRoad("Ring", "A", "A", 2))
	nbs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbs)
	assert.True(t, g.Looped())
	assert.False(t, g.Multigraph())
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("R3", "C", "D", 1))
	require.NoError(t, g.AddRoad("R1", "A", "B", 1))
	require.NoError(t, g.AddRoad("R2", "B", "C", 1))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	names := make([]string, 0, 3)
	for _, r := range g.Roads() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"R1", "R2", "R3"}, names)
	assert.Equal(t, 3, g.RoadCount())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddRoad("R1", "A", "B", 1))
	require.NoError(t, g.AddRoad("R2", "A", "B", 2))

	c := g.Clone()
	require.NoError(t, c.AddRoad("R3", "B", "C", 3))

	assert.Equal(t, 2, g.RoadCount())
	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, 3, c.RoadCount())
	assert.Len(t, c.RoadsBetween("B", "A"), 2)
	assert.True(t, c.Multigraph())
}

func TestGraph_ConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddRoad("R1", "A", "B", 1))
	require.NoError(t, g.AddRoad("R2", "B", "C", 1))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nbs, err := g.NeighborIDs("B")
			assert.NoError(t, err)
			assert.Len(t, nbs, 2)
			_ = g.Roads()
		}()
	}
	wg.Wait()
}
