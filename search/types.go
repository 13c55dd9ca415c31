// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/roadsim/cost"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a planner.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidNode indicates that the start or goal vertex is absent from the graph.
	ErrInvalidNode = errors.New("search: node not in graph")

	// ErrNoPath indicates that the goal cannot be reached from the start.
	ErrNoPath = errors.New("search: no path exists")

	// ErrMissingEdgeCost indicates a cost lookup for a pair with no recorded value.
	ErrMissingEdgeCost = cost.ErrMissingEdgeCost
)

// Result is the record every offline planner returns.
type Result struct {
	Elapsed  time.Duration // wall time spent inside the planner
	Expanded int           // number of nodes expanded
	Cost     float64       // total path cost under the snapshot used for planning
	Path     []string      // source first, goal last
}
