// SPDX-License-Identifier: MIT

// Package traffic turns traffic categories into edge costs.
//
// A road's cost on a given day is its base cost scaled by the day's traffic
// level: Low ×0.9, Normal ×1.0, Heavy ×1.25. Between two nodes the planner
// always takes the cheapest of the parallel roads, so per-pair costs are the
// minimum over every road that joins the pair.
//
// The package provides:
//
//	– Optimistic(g)               best-case costs (every road at Low), for the heuristic.
//	– ApplyPredictions(m, g, day) the day's planning snapshot from predicted levels.
//	– Realized                    the observer revealing realized costs after the fact.
//	– Predictor                   a seeded probability model that perturbs reported
//	                              predictions into the ones actually used.
package traffic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownLevel indicates a traffic category other than low, normal or heavy.
	ErrUnknownLevel = errors.New("traffic: unknown traffic level")

	// ErrUnknownRoad indicates a day record naming a road absent from the graph.
	ErrUnknownRoad = errors.New("traffic: unknown road")

	// ErrBadProbabilities indicates probabilities that are negative or do not sum to 1.
	ErrBadProbabilities = errors.New("traffic: probabilities must be non-negative and sum to 1")
)

// Level is a traffic category.
type Level int

const (
	// Low traffic: roads are faster than usual.
	Low Level = iota
	// Normal traffic: base cost applies.
	Normal
	// Heavy traffic: roads are slower than usual.
	Heavy
)

// Cost multipliers per level.
const (
	LowMultiplier    = 0.9
	NormalMultiplier = 1.0
	HeavyMultiplier  = 1.25
)

// String returns the lower-case name used in scenario files.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case Heavy:
		return "heavy"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses "low", "normal" or "heavy" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "normal":
		return Normal, nil
	case "heavy":
		return Heavy, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Multiplier returns the cost factor of l.
func (l Level) Multiplier() float64 {
	switch l {
	case Low:
		return LowMultiplier
	case Heavy:
		return HeavyMultiplier
	default:
		return NormalMultiplier
	}
}

// Lower returns the next lighter level, clamped at Low.
func (l Level) Lower() Level {
	if l <= Low {
		return Low
	}
	return l - 1
}

// Higher returns the next heavier level, clamped at Heavy.
func (l Level) Higher() Level {
	if l >= Heavy {
		return Heavy
	}
	return l + 1
}

// Adjust scales a base cost by the level's multiplier.
func Adjust(base float64, l Level) float64 {
	return base * l.Multiplier()
}

// Day maps road names to their traffic level for one day.
// Roads missing from a Day are treated as Normal.
type Day map[string]Level

// Level returns the level of road, defaulting to Normal.
func (d Day) Level(road string) Level {
	if l, ok := d[road]; ok {
		return l
	}
	return Normal
}

// Probabilities parameterize the Predictor: the chance a reported prediction
// is kept, shifted one level lighter, or shifted one level heavier.
type Probabilities struct {
	Correct float64
	Lower   float64
	Higher  float64
}

// DefaultProbabilities keeps 60% of predictions and splits the rest evenly.
func DefaultProbabilities() Probabilities {
	return Probabilities{Correct: 0.6, Lower: 0.2, Higher: 0.2}
}

// Validate checks that p is a probability distribution.
func (p Probabilities) Validate() error {
	const eps = 1e-9
	if p.Correct < 0 || p.Lower < 0 || p.Higher < 0 {
		return fmt.Errorf("%w: %+v", ErrBadProbabilities, p)
	}
	if sum := p.Correct + p.Lower + p.Higher; sum < 1-eps || sum > 1+eps {
		return fmt.Errorf("%w: sum=%v", ErrBadProbabilities, sum)
	}

	return nil
}
