// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadsim/core"
)

// Sentinel errors for walks.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrUnreached is returned by Tree.Route for a node the walk never reached.
	ErrUnreached = errors.New("bfs: node not reached")
)

// Crossing decides whether the walk may move from one node to a neighbor.
// roads lists every road joining the two nodes, sorted by name.
type Crossing func(from, to string, roads []core.Road) bool

// Option configures a walk.
type Option func(*Options)

// Options holds the hooks of a walk.
type Options struct {
	// OnVisit runs when a node leaves the queue. A non-nil error stops the walk.
	OnVisit func(id string, hops int) error

	// Cross filters moves. Nil allows every move.
	Cross Crossing
}

// WithOnVisit registers fn to run on every visited node.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithCrossing restricts the walk to moves that fn accepts.
func WithCrossing(fn Crossing) Option {
	return func(o *Options) {
		o.Cross = fn
	}
}

// OpenRoads allows a move only when at least one joining road passes keep.
// Use it to walk the network with some roads closed.
func OpenRoads(keep func(core.Road) bool) Crossing {
	return func(_, _ string, roads []core.Road) bool {
		for _, r := range roads {
			if keep(r) {
				return true
			}
		}

		return false
	}
}

// Tree is the outcome of a walk from one start node.
type Tree struct {
	Start  string
	Order  []string          // visit sequence
	Hops   map[string]int    // roads between Start and each reached node
	Parent map[string]string // predecessor of each reached node except Start
}

// Reached reports whether id was visited.
func (t *Tree) Reached(id string) bool {
	_, ok := t.Hops[id]

	return ok
}

// Route returns a fewest-roads route from Start to dest, both included.
func (t *Tree) Route(dest string) ([]string, error) {
	hops, ok := t.Hops[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreached, dest, t.Start)
	}
	route := make([]string, hops+1)
	for i, cur := hops, dest; i >= 0; i-- {
		route[i] = cur
		cur = t.Parent[cur]
	}

	return route, nil
}
