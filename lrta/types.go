// SPDX-License-Identifier: MIT

package lrta

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/roadsim/core"
	"github.com/katalvlaran/roadsim/heuristic"
)

var (
	// ErrNilObserver indicates a View without an Observer.
	ErrNilObserver = errors.New("lrta: observer is nil")

	// ErrStepLimit indicates the walk exceeded its step budget.
	ErrStepLimit = errors.New("lrta: step limit exceeded")
)

// Observer reveals the realized cost of moving between two adjacent nodes.
type Observer interface {
	Cost(from, to string) (float64, error)
}

// View is everything the agent is allowed to know before it starts walking.
type View struct {
	Graph       *core.Graph
	Heuristic   heuristic.Heuristic
	Source      string
	Destination string
	Observer    Observer
}

// Trip is the outcome of one walk.
type Trip struct {
	Elapsed time.Duration // wall time spent walking
	Cost    float64       // total realized cost of every move
	Path    []string      // every node visited in order, source first, destination last
	Steps   int           // number of moves made
}

// Selection chooses how the agent ranks neighbors.
type Selection int

const (
	// Estimate ranks neighbors by their estimate alone.
	Estimate Selection = iota
	// Lookahead ranks neighbors by observed move cost plus estimate.
	Lookahead
)

// String returns the policy name.
func (s Selection) String() string {
	switch s {
	case Estimate:
		return "estimate"
	case Lookahead:
		return "lookahead"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Option configures Solve.
type Option func(*Options)

// Options holds the agent's tunables.
type Options struct {
	// MaxSteps bounds the number of moves; 0 means 64·|V|+64.
	MaxSteps int
	// Selection is the neighbor ranking policy.
	Selection Selection
}

// DefaultOptions returns Estimate selection and the default step budget.
func DefaultOptions() Options {
	return Options{Selection: Estimate}
}

// WithMaxSteps bounds the walk to n moves. Panics if n <= 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("lrta: WithMaxSteps(%d): must be positive", n))
	}
	return func(o *Options) { o.MaxSteps = n }
}

// WithSelection sets the neighbor ranking policy. Panics on an unknown policy.
func WithSelection(s Selection) Option {
	if s != Estimate && s != Lookahead {
		panic(fmt.Sprintf("lrta: WithSelection(%d): unknown policy", int(s)))
	}
	return func(o *Options) { o.Selection = s }
}
