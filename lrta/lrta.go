// SPDX-License-Identifier: MIT

package lrta

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/roadsim/bfs"
	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/search"
)

// Solve walks from view.Source to view.Destination.
//
// Preconditions and validation (in order):
//  1. view.Graph must be non-nil (search.ErrNilGraph).
//  2. Source and Destination must be vertices (search.ErrInvalidNode).
//  3. view.Observer must be non-nil (ErrNilObserver).
//  4. Destination must be reachable from Source through nodes with a
//     finite estimate (search.ErrNoPath). The agent never steps onto
//     a node its heuristic rates +Inf.
//
// Observer errors abort the walk and are returned wrapped.
func Solve(view View, opts ...Option) (*Trip, error) {
	began := time.Now()

	// 1) Validate inputs
	if err := search.ValidateEndpoints(view.Graph, view.Source, view.Destination); err != nil {
		return nil, err
	}
	if view.Observer == nil {
		return nil, ErrNilObserver
	}
	estimated := bfs.WithCrossing(func(_, to string, _ []core.Road) bool {
		return !math.IsInf(view.Heuristic.Of(to), 1)
	})
	ok, err := bfs.Reachable(view.Graph, view.Source, view.Destination, estimated)
	if err != nil {
		return nil, fmt.Errorf("lrta: reachability: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q unreachable from %q", search.ErrNoPath, view.Destination, view.Source)
	}

	// 2) Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = 64*view.Graph.VertexCount() + 64
	}

	// 3) Walk
	a := &agent{
		view: view,
		opts: o,
		H:    make(map[string]float64),
	}
	if err = a.walk(); err != nil {
		return nil, err
	}

	return &Trip{
		Elapsed: time.Since(began),
		Cost:    a.total,
		Path:    a.path,
		Steps:   a.steps,
	}, nil
}

// agent holds the learned estimates and the walk so far.
type agent struct {
	view  View
	opts  Options
	H     map[string]float64 // learned estimates of visited nodes
	path  []string
	total float64
	steps int
}

func (a *agent) walk() error {
	var (
		parent    string
		hasParent bool
		lastCost  float64
		current   = a.view.Source
	)

	for {
		// 1) Record the node and stop at the destination.
		a.path = append(a.path, current)
		if current == a.view.Destination {
			return nil
		}

		// 2) Seed the estimate on first visit.
		if _, seen := a.H[current]; !seen {
			a.H[current] = a.view.Heuristic.Of(current)
		}

		// 3) Learn: the node just left is worth the move plus what lies ahead.
		if hasParent {
			a.H[parent] = lastCost + a.H[current]
		}

		// 4) Respect the step budget.
		if a.steps >= a.opts.MaxSteps {
			return fmt.Errorf("%w: %d moves without reaching %q", ErrStepLimit, a.steps, a.view.Destination)
		}

		// 5) Choose and traverse.
		next, err := a.choose(current)
		if err != nil {
			return err
		}
		c, err := a.view.Observer.Cost(current, next)
		if err != nil {
			return fmt.Errorf("lrta: observe %s→%s: %w", current, next, err)
		}
		a.total += c
		a.steps++

		parent, hasParent, lastCost = current, true, c
		current = next
	}
}

// estimate returns the learned H of id, or the heuristic for unvisited nodes.
func (a *agent) estimate(id string) float64 {
	if v, ok := a.H[id]; ok {
		return v
	}

	return a.view.Heuristic.Of(id)
}

// choose returns the best-ranked neighbor of current under the selection policy.
func (a *agent) choose(current string) (string, error) {
	nbs, err := a.view.Graph.NeighborIDs(current)
	if err != nil {
		return "", fmt.Errorf("lrta: neighbors of %q: %w", current, err)
	}

	best, bestScore := "", math.Inf(1)
	for _, nb := range nbs {
		score := a.estimate(nb)
		if a.opts.Selection == Lookahead {
			c, err := a.view.Observer.Cost(current, nb)
			if err != nil {
				return "", fmt.Errorf("lrta: look ahead %s→%s: %w", current, nb, err)
			}
			score += c
		}
		// Strict comparison keeps the first neighbor on ties.
		if score < bestScore {
			best, bestScore = nb, score
		}
	}
	if best == "" {
		return "", fmt.Errorf("%w: stuck at %q", search.ErrNoPath, current)
	}

	return best, nil
}
