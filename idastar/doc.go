// SPDX-License-Identifier: MIT

// Package idastar implements Iterative-Deepening A* between two nodes of a
// road network.
//
// Each iteration is a depth-first pass bounded by a cost threshold on
// f = g + h, where g is the cost accumulated along the current branch and h
// comes from a heuristic.Heuristic. Branches whose f exceeds the threshold are
// pruned and the smallest pruned f becomes the next threshold. The first
// threshold is h(start).
//
// With an admissible heuristic the first goal reached is optimal, so IDA*
// returns the same cost as UCS on the same snapshot, in O(depth) memory.
//
// Cycle handling: a node already on the current branch is never re-entered.
// Nodes reached through different branches may be expanded several times, and
// every iteration re-expands the nodes of the previous one; Result.Expanded
// counts all of these.
//
// Errors:
//
//	– search.ErrNilGraph, search.ErrInvalidNode  on bad input.
//	– search.ErrMissingEdgeCost                   if the snapshot lacks a pair.
//	– search.ErrNoPath                            if h(start) is +Inf or a pass
//	                                              finds nothing left to prune.
package idastar
