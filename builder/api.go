// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsim/core"
)

// Constructor adds topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildNetwork creates a multigraph, resolves bopts and applies all constructors in order.
// Constructor errors are wrapped as "BuildNetwork: %w".
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(core.WithMultiEdges())
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// Path returns a Constructor for the chain N0–N1–…–N(n-1). Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if err := g.AddVertex(cfg.vertexID(0)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, cfg.vertexID(i-1), cfg.vertexID(i)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring N0–…–N(n-1)–N0. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := cfg.connect(g, cfg.vertexID(i), cfg.vertexID((i+1)%n)); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighborhood grid with IDs "r,c".
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return err
				}
				if c+1 < cols {
					if err := cfg.connect(g, id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := cfg.connect(g, id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected network on n vertices:
// a random spanning tree (each vertex i>0 attaches to a uniformly chosen earlier
// vertex) plus every other unordered pair independently with probability p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomConnected: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomConnected: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if err := g.AddVertex(cfg.vertexID(0)); err != nil {
			return err
		}

		// 1) Spanning tree keeps every vertex reachable.
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			if err := cfg.connect(g, cfg.vertexID(j), cfg.vertexID(i)); err != nil {
				return fmt.Errorf("RandomConnected: %w", err)
			}
		}

		// 2) Extra edges in stable (i asc, j asc) trial order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.vertexID(i), cfg.vertexID(j)
				if g.HasEdge(u, v) || cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.connect(g, u, v); err != nil {
					return fmt.Errorf("RandomConnected: %w", err)
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds vertices with the given IDs and no roads.
func Isolated(ids ...string) Constructor {
	return func(g *core.Graph, _ *builderConfig) error {
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("Isolated: %w", err)
			}
		}

		return nil
	}
}
