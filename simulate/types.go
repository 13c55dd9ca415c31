// SPDX-License-Identifier: MIT

// Package simulate runs the day-by-day planning loop over a scenario.
//
// The heuristic is built once from optimistic costs. Each day the simulator
// perturbs the day's reported prediction with a seeded traffic.Predictor,
// rebuilds the cost snapshot from it, plans with the offline engines (scoring
// their routes against the day's realized traffic) and lets the online agent
// walk the realized network.
package simulate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadsim/lrta"
	"github.com/katalvlaran/roadsim/traffic"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm name other than ucs, idastar or lrta.
	ErrUnknownAlgorithm = errors.New("simulate: unknown algorithm")

	// ErrDayRange indicates more days requested than the scenario holds.
	ErrDayRange = errors.New("simulate: day out of range")

	// ErrDone is returned by Step once every day has been simulated.
	ErrDone = errors.New("simulate: no days left")
)

// Algorithm names a planner.
type Algorithm string

const (
	UCS     Algorithm = "ucs"
	IDAStar Algorithm = "idastar"
	LRTA    Algorithm = "lrta"
)

// AllAlgorithms lists every planner in reporting order.
func AllAlgorithms() []Algorithm { return []Algorithm{UCS, IDAStar, LRTA} }

// ParseAlgorithms parses a comma-separated list such as "ucs,lrta".
func ParseAlgorithms(s string) ([]Algorithm, error) {
	var out []Algorithm
	seen := make(map[Algorithm]bool)
	for _, part := range strings.Split(s, ",") {
		a := Algorithm(strings.ToLower(strings.TrimSpace(part)))
		switch a {
		case "":
			continue
		case UCS, IDAStar, LRTA:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, part)
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list %q", ErrUnknownAlgorithm, s)
	}

	return out, nil
}

// Outcome is one planner's result for one day.
//
// For the online agent Online is set, PredictedCost is zero and Expanded
// counts the moves it made.
type Outcome struct {
	Algorithm     Algorithm
	Online        bool
	Expanded      int
	Elapsed       time.Duration
	PredictedCost float64
	RealCost      float64
	Path          []string
}

// DayReport gathers every planner's Outcome for one day.
type DayReport struct {
	Day      int // 1-based
	Outcomes []Outcome
}

// Option configures a Simulator.
type Option func(*Options)

// Options holds the simulator's tunables.
type Options struct {
	Days       int // 0 means every day of the scenario
	Seed       int64
	Probs      traffic.Probabilities
	Logger     zerolog.Logger
	MaxSteps   int // forwarded to the agent; 0 keeps its default
	Selection  lrta.Selection
	Algorithms []Algorithm
}

// DefaultOptions simulates every day with every algorithm, seed 1, default
// probabilities and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Seed:       1,
		Probs:      traffic.DefaultProbabilities(),
		Logger:     zerolog.Nop(),
		Selection:  lrta.Estimate,
		Algorithms: AllAlgorithms(),
	}
}

// WithDays limits the run to the first n days. Panics if n <= 0.
func WithDays(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("simulate: WithDays(%d): must be positive", n))
	}
	return func(o *Options) { o.Days = n }
}

// WithSeed seeds the prediction model.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithProbabilities sets the prediction model. Panics if p is not a distribution.
func WithProbabilities(p traffic.Probabilities) Option {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("simulate: WithProbabilities: %v", err))
	}
	return func(o *Options) { o.Probs = p }
}

// WithLogger sets the logger receiving per-day events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxSteps bounds every agent walk. Panics if n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("simulate: WithMaxSteps(%d): must be positive", n))
	}
	return func(o *Options) { o.MaxSteps = n }
}

// WithSelection sets the agent's neighbor ranking policy.
func WithSelection(s lrta.Selection) Option {
	return func(o *Options) { o.Selection = s }
}

// WithAlgorithms restricts the run to algs, in the given order. Panics if algs is empty.
func WithAlgorithms(algs ...Algorithm) Option {
	if len(algs) == 0 {
		panic("simulate: WithAlgorithms: no algorithms")
	}
	return func(o *Options) { o.Algorithms = append([]Algorithm(nil), algs...) }
}
