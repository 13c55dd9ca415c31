// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory road network used by every
// planner in roadsim.
//
// The Graph G = (V,E) is undirected: every road is stored once in the road
// catalog and mirrored in the adjacency index, so the symmetric membership
// invariant B ∈ adj(A) ⇔ A ∈ adj(B) always holds.
//
// Physical roads are parallel edges between the same pair of nodes. Each road
// carries a unique name and a non-negative base cost; planners never read the
// base cost directly, they go through a per-day cost.Map (see package cost)
// or through a traffic observer (see package traffic).
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows several named roads between the same endpoints.
//	    Otherwise a second AddRoad(a,b) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits roads whose endpoints coincide; otherwise ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	AddRoad(name, a, b string, cost float64) error      // O(1)
//	Road(name string) (Road, error)                     // O(1)
//	HasEdge(a, b string) bool                           // O(1)
//	RoadsBetween(a, b string) []Road                    // O(k·log k), k parallel roads
//	NeighborIDs(id string) ([]string, error)            // O(d·log d), unique, sorted
//	Vertices() []string                                 // O(V·log V)
//	Roads() []Road                                      // O(E·log E)
//	VertexCount(), RoadCount() int                      // O(1)
//	Clone() *Graph                                      // O(V+E)
//
// Locking follows a fixed order (muVert, then muEdgeAdj) in every method
// that needs both.
package core
