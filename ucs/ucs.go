// SPDX-License-Identifier: MIT

package ucs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/search"
)

// Search returns the cheapest path from start to goal under costs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrNilGraph).
//  2. start and goal must be vertices of g (search.ErrInvalidNode).
//  3. costs must be non-nil (search.ErrMissingEdgeCost).
func Search(g *core.Graph, costs *cost.Map, start, goal string) (*search.Result, error) {
	began := time.Now()

	// 1) Validate inputs
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if costs == nil {
		return nil, fmt.Errorf("%w: nil cost map", search.ErrMissingEdgeCost)
	}

	// 2) Prepare per-call state
	n := g.VertexCount()
	r := &runner{
		g:        g,
		costs:    costs,
		goal:     goal,
		frontier: search.NewFrontier(n),
		settled:  make(map[string]bool, n),
		best:     make(map[string]float64, n),
		parent:   make(map[string]string, n),
	}

	// 3) Run the main loop
	total, err := r.process(start)
	if err != nil {
		return nil, err
	}

	return &search.Result{
		Elapsed:  time.Since(began),
		Expanded: r.expanded,
		Cost:     total,
		Path:     search.Backtrace(r.parent, start, goal),
	}, nil
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g        *core.Graph
	costs    *cost.Map
	goal     string
	frontier *search.Frontier
	settled  map[string]bool    // nodes whose cost is final
	best     map[string]float64 // best known cost so far
	parent   map[string]string  // parent on the best known route
	expanded int
}

// process pops entries until the goal is settled or the frontier empties.
func (r *runner) process(start string) (float64, error) {
	r.best[start] = 0
	r.frontier.Push(start, 0)

	for r.frontier.Len() > 0 {
		// 1) Pop the cheapest entry; stale duplicates belong to settled nodes.
		u, d := r.frontier.Pop()
		if r.settled[u] {
			continue
		}

		// 2) Settle u and count it as expanded.
		r.settled[u] = true
		r.expanded++

		// 3) Goal test on pop, never on push.
		if u == r.goal {
			return d, nil
		}

		// 4) Relax every unsettled neighbor.
		if err := r.relax(u, d); err != nil {
			return 0, err
		}
	}

	return 0, fmt.Errorf("%w: goal %q after %d expansions", search.ErrNoPath, r.goal, r.expanded)
}

// relax pushes every neighbor of u whose best known cost improves through u.
func (r *runner) relax(u string, d float64) error {
	neighbors, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("ucs: neighbors of %q: %w", u, err)
	}

	var w, candidate float64
	for _, v := range neighbors {
		if r.settled[v] {
			continue
		}
		if w, err = r.costs.Lookup(u, v); err != nil {
			return fmt.Errorf("ucs: relax %q: %w", u, err)
		}
		candidate = d + w

		// Only a strict improvement pushes a new entry.
		if known, ok := r.best[v]; ok && candidate >= known {
			continue
		}
		r.best[v] = candidate
		r.parent[v] = u
		r.frontier.Push(v, candidate)
	}

	return nil
}
