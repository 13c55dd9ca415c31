// SPDX-License-Identifier: MIT

// Package search holds what the roadsim planners share: the Result record,
// the error taxonomy, a min-priority Frontier and path helpers.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if a nil *core.Graph is passed to a planner.
//	– ErrInvalidNode      if the start or goal vertex is not in the graph.
//	– ErrNoPath           if the goal is unreachable; planners detect frontier
//	                      or threshold exhaustion instead of looping forever.
//	– ErrMissingEdgeCost  if the cost snapshot has no value for a traversed pair
//	                      (the same value as cost.ErrMissingEdgeCost).
//
// All errors are fatal to the call that produced them; planners never return
// a partial path.
package search
