// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyRoadName indicates a road was added without a name.
	ErrEmptyRoadName = errors.New("core: road name is empty")

	// ErrDuplicateRoad indicates a road name is already present in the catalog.
	ErrDuplicateRoad = errors.New("core: duplicate road name")

	// ErrRoadNotFound indicates an operation referenced a non-existent road.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrNegativeCost indicates a negative or NaN base cost.
	ErrNegativeCost = errors.New("core: road cost must be a non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel road was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Road is a named physical connection between two nodes.
//
// From and To keep the orientation in which the road was declared; the graph
// itself treats every road as traversable in both directions.
type Road struct {
	// Name uniquely identifies the road within its Graph.
	Name string

	// From and To are the endpoint vertex IDs.
	From string
	To   string

	// Cost is the base (normal traffic) cost of traversing the road.
	Cost float64
}

// Other returns the endpoint of r opposite to id, and false if id is not an endpoint.
func (r Road) Other(id string) (string, bool) {
	switch id {
	case r.From:
		return r.To, true
	case r.To:
		return r.From, true
	default:
		return "", false
	}
}

// Connects reports whether r joins a and b, in either orientation.
func (r Road) Connects(a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel roads between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits roads from a vertex to itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the road network.
//
// muVert protects vertices; muEdgeAdj protects the road catalog and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards roads and adjacency

	allowMulti bool // allow parallel roads
	allowLoops bool // allow self-loops

	vertices map[string]struct{} // vertex ID set
	roads    map[string]*Road    // road name → Road

	// adjacency[a][b][roadName] = struct{}{}, mirrored for b→a.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default parallel roads and loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		roads:     make(map[string]*Road),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
