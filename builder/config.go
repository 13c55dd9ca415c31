// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/roadsim/core"
)

// Deterministic defaults.
const (
	defaultSeed    = 1
	defaultMinCost = 1.0
	defaultMaxCost = 10.0
	defaultPrefix  = "N"
	roadNamePrefix = "R"
	probMin        = 0.0
	probMax        = 1.0
)

// builderConfig aggregates all knobs used by constructors. Constructors get it by pointer
// because the RNG and the road counter advance as roads are emitted.
type builderConfig struct {
	rng      *rand.Rand
	minCost  float64
	maxCost  float64
	parallel float64 // probability of a second road per emitted edge
	prefix   string
	roads    int // roads emitted so far
}

// BuilderOption customizes a builder configuration.
type BuilderOption func(*builderConfig)

// WithSeed seeds the RNG used for costs, parallel roads and random topology.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostRange draws base costs uniformly from [min,max], rounded to whole units.
// It panics if min < 0 or max < min.
func WithCostRange(min, max float64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithCostRange(%v, %v): need 0 ≤ min ≤ max", min, max))
	}
	return func(c *builderConfig) { c.minCost, c.maxCost = min, max }
}

// WithParallelRoads adds, with probability p, a second named road alongside each edge.
// It panics if p is outside [0,1].
func WithParallelRoads(p float64) BuilderOption {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithParallelRoads(%v): %v", p, ErrInvalidProbability))
	}
	return func(c *builderConfig) { c.parallel = p }
}

// WithIDPrefix sets the vertex ID prefix for index-based constructors.
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) { c.prefix = prefix }
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		minCost: defaultMinCost,
		maxCost: defaultMaxCost,
		prefix:  defaultPrefix,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// vertexID returns the index-based vertex ID for i.
func (c *builderConfig) vertexID(i int) string {
	return c.prefix + strconv.Itoa(i)
}

// drawCost samples a whole-unit base cost from [minCost, maxCost].
func (c *builderConfig) drawCost() float64 {
	return math.Round(c.minCost + c.rng.Float64()*(c.maxCost-c.minCost))
}

// connect emits one road between a and b, plus an optional parallel road.
func (c *builderConfig) connect(g *core.Graph, a, b string) error {
	n := 1
	if c.parallel > 0 && c.rng.Float64() < c.parallel {
		n = 2
	}
	for i := 0; i < n; i++ {
		c.roads++
		name := roadNamePrefix + strconv.Itoa(c.roads)
		if err := g.AddRoad(name, a, b, c.drawCost()); err != nil {
			return fmt.Errorf("%w: AddRoad(%s): %v", ErrConstructFailed, name, err)
		}
	}

	return nil
}
