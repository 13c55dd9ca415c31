// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddRoad registers a named road between a and b with the given base cost.
// Both endpoints are created if missing. The road is mirrored in the
// adjacency index so that it can be walked in either direction.
//
// Returns ErrEmptyRoadName, ErrEmptyVertexID, ErrNegativeCost, ErrDuplicateRoad,
// ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddRoad(name, a, b string, cost float64) error {
	// 1) Input validation
	if name == "" {
		return ErrEmptyRoadName
	}
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 || math.IsNaN(cost) {
		return fmt.Errorf("%w: road %s cost=%v", ErrNegativeCost, name, cost)
	}
	// 2) Loop constraint
	if a == b && !g.allowLoops {
		return fmt.Errorf("%w: road %s at %s", ErrLoopNotAllowed, name, a)
	}
	// 3) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(a); err != nil {
		return err
	}
	if err := g.AddVertex(b); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 4) Catalog and multi-edge checks
	if _, exists := g.roads[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoad, name)
	}
	if !g.allowMulti {
		if inner, ok := g.adjacency[a][b]; ok && len(inner) > 0 {
			return fmt.Errorf("%w: road %s between %s and %s", ErrMultiEdgeNotAllowed, name, a, b)
		}
	}

	// 5) Store in the catalog and both adjacency directions
	g.roads[name] = &Road{Name: name, From: a, To: b, Cost: cost}
	g.ensureAdjMap(a, b)
	g.adjacency[a][b][name] = struct{}{}
	if a != b {
		g.ensureAdjMap(b, a)
		g.adjacency[b][a][name] = struct{}{}
	}

	return nil
}

// Road returns a copy of the road with the given name.
// Complexity: O(1).
func (g *Graph) Road(name string) (Road, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	r, ok := g.roads[name]
	if !ok {
		return Road{}, fmt.Errorf("%w: %s", ErrRoadNotFound, name)
	}

	return *r, nil
}

// HasEdge reports true if at least one road joins a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner, ok := g.adjacency[a][b]

	return ok && len(inner) > 0
}

// RoadsBetween returns every road joining a and b, sorted by name.
// The result is empty (not an error) when the nodes are not adjacent.
// Complexity: O(k·log k) where k is the number of parallel roads.
func (g *Graph) RoadsBetween(a, b string) []Road {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner := g.adjacency[a][b]
	out := make([]Road, 0, len(inner))
	for name := range inner {
		out = append(out, *g.roads[name])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// NeighborIDs returns the unique IDs of all vertices adjacent to id, sorted lexicographically.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	// Same lock order as mutators: muVert, then muEdgeAdj.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(g.adjacency[id]))
	for nb, roads := range g.adjacency[id] {
		if len(roads) > 0 {
			ids = append(ids, nb)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Roads returns copies of all roads sorted by name.
// Complexity: O(E·logE)
func (g *Graph) Roads() []Road {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Road, 0, len(g.roads))
	for _, r := range g.roads {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// RoadCount returns total number of roads. O(1).
func (g *Graph) RoadCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.roads)
}

// Multigraph reports whether parallel roads are permitted.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Clone returns a deep copy of the Graph: configuration, vertices, roads and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.allowMulti = g.allowMulti
	clone.allowLoops = g.allowLoops
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.ensureAdjID(id)
	}
	for name, r := range g.roads {
		cp := *r
		clone.roads[name] = &cp
		clone.ensureAdjMap(r.From, r.To)
		clone.adjacency[r.From][r.To][name] = struct{}{}
		if r.From != r.To {
			clone.ensureAdjMap(r.To, r.From)
			clone.adjacency[r.To][r.From][name] = struct{}{}
		}
	}

	return clone
}

// ensureAdjID makes adjacency[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacency[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
