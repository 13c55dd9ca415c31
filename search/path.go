// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/cost"
)

// ValidateEndpoints checks that g is non-nil and holds both start and goal.
func ValidateEndpoints(g *core.Graph, start, goal string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q", ErrInvalidNode, start)
	}
	if !g.HasVertex(goal) {
		return fmt.Errorf("%w: goal %q", ErrInvalidNode, goal)
	}

	return nil
}

// Backtrace follows parent links from goal back to start and returns the
// path in travel order.
func Backtrace(parent map[string]string, start, goal string) []string {
	path := []string{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the costs of consecutive pairs of path under costs.
// A path with fewer than two nodes costs zero.
func PathCost(path []string, costs *cost.Map) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		c, err := costs.Lookup(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += c
	}

	return total, nil
}
