package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsim/cost"
)

func TestMap_SetIsSymmetric(t *testing.T) {
	m := cost.NewMap()
	require.NoError(t, m.Set("A", "B", 4))

	ab, err := m.Lookup("A", "B")
	require.NoError(t, err)
	ba, err := m.Lookup("B", "A")
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, 2, m.Len())
}

func TestMap_LookupMissing(t *testing.T) {
	m := cost.NewMap()
	_, err := m.Lookup("A", "B")
	assert.ErrorIs(t, err, cost.ErrMissingEdgeCost)

	m.Declare("A", "B")
	_, err = m.Lookup("B", "A")
	assert.ErrorIs(t, err, cost.ErrMissingEdgeCost)
	assert.False(t, m.Get("A", "B").IsKnown())
}

func TestMap_RejectsNegative(t *testing.T) {
	m := cost.NewMap()
	assert.ErrorIs(t, m.Set("A", "B", -0.5), cost.ErrNegativeCost)
	_, err := m.Relax("A", "B", math.NaN())
	assert.ErrorIs(t, err, cost.ErrNegativeCost)
}

func TestMap_RelaxKeepsMinimum(t *testing.T) {
	m := cost.NewMap()

	changed, err := m.Relax("A", "B", 10)
	require.NoError(t, err)
	assert.True(t, changed, "unset entry must accept the first value")

	changed, err = m.Relax("B", "A", 12)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = m.Relax("B", "A", 9)
	require.NoError(t, err)
	assert.True(t, changed)

	v, err := m.Lookup("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestMap_ResetKeepsPairs(t *testing.T) {
	m := cost.NewMap()
	require.NoError(t, m.Set("A", "B", 1))
	require.NoError(t, m.Set("B", "C", 2))
	before := m.Pairs()

	m.Reset()
	assert.Equal(t, before, m.Pairs())
	for _, p := range m.Pairs() {
		assert.Equal(t, cost.Unset(), m.Get(p.From, p.To), "pair %s", p)
	}
}

func TestMap_CloneAndEqual(t *testing.T) {
	m := cost.NewMap()
	require.NoError(t, m.Set("A", "B", 1))
	c := m.Clone()
	assert.True(t, m.Equal(c))

	require.NoError(t, c.Set("A", "B", 2))
	assert.False(t, m.Equal(c))
	assert.False(t, m.Equal(nil))
}

func TestCost_Tagged(t *testing.T) {
	v, ok := cost.Known(3.5).Value()
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
	assert.Equal(t, "3.50", cost.Known(3.5).String())
	assert.Equal(t, "unset", cost.Unset().String())
	assert.Equal(t, cost.Pair{From: "B", To: "A"}, cost.Pair{From: "A", To: "B"}.Reverse())
}
