// SPDX-License-Identifier: MIT

// Package heuristic builds the admissible cost-to-go estimate used by IDA*
// and the online agent.
//
// Build runs a single-source Dijkstra rooted at the destination over
// optimistic (best-case traffic) edge costs. Because every day's cost of an
// edge is at least its optimistic cost, the resulting distances never exceed
// the true remaining cost on any day: the heuristic is admissible and
// consistent, and Heuristic.Of(destination) == 0.
//
// Nodes that cannot reach the destination keep +Inf.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
package heuristic

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
	"github.com/katalvlaran/roadsim/search"
)

// Heuristic maps a node to a lower bound on its cost to the destination.
type Heuristic map[string]float64

// Of returns the estimate for id, or +Inf for nodes the heuristic does not know.
func (h Heuristic) Of(id string) float64 {
	if v, ok := h[id]; ok {
		return v
	}

	return math.Inf(1)
}

// Nodes returns all nodes of h sorted lexicographically.
func (h Heuristic) Nodes() []string {
	ids := make([]string, 0, len(h))
	for id := range h {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Build computes the heuristic for destination over optimistic costs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrNilGraph).
//  2. optimistic must be non-nil (search.ErrMissingEdgeCost).
//  3. destination must be a vertex of g (search.ErrInvalidNode).
//
// A pair reached during relaxation without an optimistic cost fails with
// search.ErrMissingEdgeCost.
func Build(g *core.Graph, optimistic *cost.Map, destination string) (Heuristic, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, search.ErrNilGraph
	}
	if optimistic == nil {
		return nil, fmt.Errorf("%w: nil optimistic cost map", search.ErrMissingEdgeCost)
	}
	if !g.HasVertex(destination) {
		return nil, fmt.Errorf("%w: destination %q", search.ErrInvalidNode, destination)
	}

	// 2) Prepare state: every node starts at +Inf
	vertices := g.Vertices()
	r := &runner{
		g:        g,
		costs:    optimistic,
		dist:     make(Heuristic, len(vertices)),
		settled:  make(map[string]bool, len(vertices)),
		frontier: search.NewFrontier(len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[destination] = 0
	r.frontier.Push(destination, 0)

	// 3) Settle nodes in increasing distance from the destination
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single reverse-Dijkstra execution.
type runner struct {
	g        *core.Graph
	costs    *cost.Map
	dist     Heuristic
	settled  map[string]bool
	frontier *search.Frontier
}

func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		u, d := r.frontier.Pop()
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		neighbors, err := r.g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("heuristic: neighbors of %q: %w", u, err)
		}
		for _, v := range neighbors {
			if r.settled[v] {
				continue
			}
			// The graph is undirected, so cost(v→u) == cost(u→v).
			w, err := r.costs.Lookup(v, u)
			if err != nil {
				return fmt.Errorf("heuristic: relax %q: %w", u, err)
			}
			if nd := d + w; nd < r.dist[v] {
				r.dist[v] = nd
				r.frontier.Push(v, nd)
			}
		}
	}

	return nil
}
