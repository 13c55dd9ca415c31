// SPDX-License-Identifier: MIT

// Package bfs walks a road network breadth-first, one road per hop.
//
// Walk builds the fewest-roads tree from a start node. A Crossing option
// limits which moves are allowed, for example to skip closed roads or
// nodes a planner cannot estimate. Reachable is the pre-flight check used
// by the simulator and the online agent.
//
// Complexity: O(V + E) time and O(V) memory per walk.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadsim/core"
)

// errFound stops the walk early once the target is visited.
var errFound = errors.New("bfs: target found")

// walker holds the mutable state of one walk.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []string
	tree  *Tree
}

// Walk explores g breadth-first from start and returns the fewest-roads tree.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, or the OnVisit error wrapped.
// On a hook error the partial tree is returned alongside.
func Walk(g *core.Graph, start string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]string, 0, n),
		tree: &Tree{
			Start:  start,
			Order:  make([]string, 0, n),
			Hops:   map[string]int{start: 0},
			Parent: make(map[string]string, n),
		},
	}
	w.queue = append(w.queue, start)

	return w.tree, w.loop()
}

// Reachable reports whether to can be reached from from under opts.
// An unknown to is simply unreachable.
func Reachable(g *core.Graph, from, to string, opts ...Option) (bool, error) {
	if g != nil && !g.HasVertex(to) {
		return false, nil
	}
	stop := WithOnVisit(func(id string, _ int) error {
		if id == to {
			return errFound
		}
		return nil
	})
	_, err := Walk(g, from, append(opts[:len(opts):len(opts)], stop)...)
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]

		w.tree.Order = append(w.tree.Order, id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(id, w.tree.Hops[id]); err != nil {
				return fmt.Errorf("bfs: visit %q: %w", id, err)
			}
		}
		if err := w.expand(id); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every unseen neighbor of id that the crossing allows.
func (w *walker) expand(id string) error {
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
	}
	for _, nb := range nbs {
		if w.tree.Reached(nb) {
			continue
		}
		if w.opts.Cross != nil && !w.opts.Cross(id, nb, w.graph.RoadsBetween(id, nb)) {
			continue
		}
		w.tree.Hops[nb] = w.tree.Hops[id] + 1
		w.tree.Parent[nb] = id
		w.queue = append(w.queue, nb)
	}

	return nil
}
