// SPDX-License-Identifier: MIT

// Package lrta implements an online Learning-Real-Time-A* agent.
//
// Unlike the offline planners the agent does not know the day's costs in
// advance. It starts at the source with a global admissible heuristic,
// repeatedly moves to the most promising neighbor and only learns the real
// cost of a road after traversing it, through an Observer. Every move updates
// the learned estimate of the node it left:
//
//	H[parent] = realized(parent→current) + H[current]
//
// so dead ends become more expensive each time the agent passes through them
// and the walk eventually escapes local minima.
//
// Selection policies:
//
//	– Estimate  (default) picks the neighbor with the smallest estimate
//	            (learned H, or the heuristic for unvisited neighbors).
//	– Lookahead picks the neighbor minimizing observed c(current, nb) + estimate.
//	            With an exact heuristic it walks the optimal route.
//
// Ties keep the first neighbor in lexicographic order.
//
// Termination guards: an unreachable destination, a node whose neighbors are
// all estimated at +Inf, or a node without neighbors fail with
// search.ErrNoPath; a walk longer than the step budget fails with
// ErrStepLimit.
package lrta
