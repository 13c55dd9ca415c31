// SPDX-License-Identifier: MIT

package traffic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
)

// Optimistic returns the best-case cost of every adjacent pair of g: the
// minimum over parallel roads of the road's Low-traffic cost. It does not
// depend on any day and is meant to be computed once.
func Optimistic(g *core.Graph) (*cost.Map, error) {
	m := cost.NewMap()
	for _, r := range g.Roads() {
		if _, err := m.Relax(r.From, r.To, Adjust(r.Cost, Low)); err != nil {
			return nil, fmt.Errorf("traffic: optimistic cost of %s: %w", r.Name, err)
		}
	}

	return m, nil
}

// ApplyPredictions resets m and rebuilds it from the day's predicted levels:
// every pair gets the minimum over its parallel roads of the adjusted cost.
// Roads without a prediction count as Normal. A prediction for a road that is
// not in g fails with ErrUnknownRoad and leaves m reset.
func ApplyPredictions(m *cost.Map, g *core.Graph, day Day) error {
	m.Reset()
	for name := range day {
		if _, err := g.Road(name); err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownRoad, name)
		}
	}
	for _, r := range g.Roads() {
		if _, err := m.Relax(r.From, r.To, Adjust(r.Cost, day.Level(r.Name))); err != nil {
			return fmt.Errorf("traffic: predicted cost of %s: %w", r.Name, err)
		}
	}

	return nil
}

// Realized reveals the costs that actually applied on a day.
// It satisfies the observer contract of the online agent.
type Realized struct {
	g   *core.Graph
	day Day
}

// NewRealized returns an observer over g for the realized levels of day.
func NewRealized(g *core.Graph, day Day) *Realized {
	return &Realized{g: g, day: day}
}

// Cost returns the cheapest realized cost among the roads joining from and to.
// Non-adjacent nodes fail with cost.ErrMissingEdgeCost.
func (r *Realized) Cost(from, to string) (float64, error) {
	best := math.Inf(1)
	for _, road := range r.g.RoadsBetween(from, to) {
		if c := Adjust(road.Cost, r.day.Level(road.Name)); c < best {
			best = c
		}
	}
	if math.IsInf(best, 1) {
		return 0, fmt.Errorf("%w: no road %s→%s", cost.ErrMissingEdgeCost, from, to)
	}

	return best, nil
}

// PathCost sums the realized cost along path.
func (r *Realized) PathCost(path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		c, err := r.Cost(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += c
	}

	return total, nil
}

// Snapshot materializes the realized costs of every adjacent pair into a cost.Map.
func (r *Realized) Snapshot() (*cost.Map, error) {
	m := cost.NewMap()
	if err := ApplyPredictions(m, r.g, r.day); err != nil {
		return nil, err
	}

	return m, nil
}
