// SPDX-License-Identifier: MIT

// Package ucs implements Uniform-Cost Search between two nodes of a road network.
//
// UCS expands nodes in order of their cumulative cost from the start, using
// the day's cost.Map snapshot and no heuristic. The first time the goal is
// popped from the frontier its cost is optimal, because costs are
// non-negative and every settled node is settled at its minimum cost.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E), the frontier may hold stale duplicates (lazy decrease-key).
//
// Tie-break: frontier entries with equal cost pop in insertion order, and
// neighbors are scanned in lexicographic order, so results are reproducible.
//
// Errors:
//
//	– search.ErrNilGraph, search.ErrInvalidNode  on bad input.
//	– search.ErrMissingEdgeCost                   if the snapshot lacks a pair.
//	– search.ErrNoPath                            if the frontier empties first.
package ucs
