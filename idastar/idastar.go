// SPDX-License-Identifier: MIT

package idastar

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/heuristic"
	"github.com/katalvlaran/roadsim/search"
)

// Search returns the cheapest path from start to goal under costs, guided by h.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrNilGraph).
//  2. start and goal must be vertices of g (search.ErrInvalidNode).
//  3. costs must be non-nil (search.ErrMissingEdgeCost).
//
// h must be admissible for costs for the result to be optimal; nodes missing
// from h are treated as +Inf and never entered.
func Search(g *core.Graph, costs *cost.Map, h heuristic.Heuristic, start, goal string) (*search.Result, error) {
	began := time.Now()

	// 1) Validate inputs
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if costs == nil {
		return nil, fmt.Errorf("%w: nil cost map", search.ErrMissingEdgeCost)
	}

	// 2) Prepare per-call state
	s := &searcher{
		g:         g,
		costs:     costs,
		h:         h,
		goal:      goal,
		path:      []string{start},
		onPath:    map[string]bool{start: true},
		neighbors: make(map[string][]string),
	}

	// 3) Deepen the threshold until the goal is reached
	threshold := h.Of(start)
	for {
		if math.IsInf(threshold, 1) {
			return nil, fmt.Errorf("%w: goal %q after %d expansions", search.ErrNoPath, goal, s.expanded)
		}

		found, next, err := s.bounded(start, 0, threshold)
		if err != nil {
			return nil, err
		}
		if found {
			out := make([]string, len(s.path))
			copy(out, s.path)

			return &search.Result{
				Elapsed:  time.Since(began),
				Expanded: s.expanded,
				Cost:     s.found,
				Path:     out,
			}, nil
		}
		threshold = next
	}
}

// searcher holds the mutable state for a single IDA* execution.
type searcher struct {
	g         *core.Graph
	costs     *cost.Map
	h         heuristic.Heuristic
	goal      string
	path      []string            // current branch, start first
	onPath    map[string]bool     // membership of path
	neighbors map[string][]string // memoized NeighborIDs
	expanded  int
	found     float64 // g of the goal once reached
}

// bounded explores the branch ending at node, whose accumulated cost is gCost.
// It reports whether the goal was reached and otherwise the smallest f that
// exceeded threshold below this node.
func (s *searcher) bounded(node string, gCost, threshold float64) (bool, float64, error) {
	// 1) Bound check comes before the goal test.
	f := gCost + s.h.Of(node)
	if f > threshold {
		return false, f, nil
	}
	s.expanded++

	// 2) Goal test
	if node == s.goal {
		s.found = gCost
		return true, f, nil
	}

	// 3) Recurse into every neighbor not already on the branch
	nbs, err := s.neighborsOf(node)
	if err != nil {
		return false, 0, err
	}
	next := math.Inf(1)
	for _, nb := range nbs {
		if s.onPath[nb] {
			continue
		}
		w, err := s.costs.Lookup(node, nb)
		if err != nil {
			return false, 0, fmt.Errorf("idastar: expand %q: %w", node, err)
		}

		s.path = append(s.path, nb)
		s.onPath[nb] = true
		found, t, err := s.bounded(nb, gCost+w, threshold)
		if err != nil || found {
			return found, t, err
		}
		s.path = s.path[:len(s.path)-1]
		delete(s.onPath, nb)

		if t < next {
			next = t
		}
	}

	return false, next, nil
}

func (s *searcher) neighborsOf(id string) ([]string, error) {
	if nbs, ok := s.neighbors[id]; ok {
		return nbs, nil
	}
	nbs, err := s.g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("idastar: neighbors of %q: %w", id, err)
	}
	s.neighbors[id] = nbs

	return nbs, nil
}
