// SPDX-License-Identifier: MIT

// Package cost holds the per-day edge-cost snapshot that planners read.
//
// A Map is keyed by ordered Pair but always written in both directions, so
// cost(A,B) == cost(B,A) holds after every mutation. Entries are tagged
// values: a pair is either Unset (no information yet for the day) or
// Known(v). Reset returns every entry to Unset at a day boundary before the
// day's predictions are applied again.
//
// A Map is not safe for concurrent mutation; the day loop owns it and
// planners only read it between updates.
package cost

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingEdgeCost indicates a lookup for a pair with no known cost.
	ErrMissingEdgeCost = errors.New("cost: missing edge cost")

	// ErrNegativeCost indicates an attempt to store a negative or NaN cost.
	ErrNegativeCost = errors.New("cost: edge cost must be a non-negative number")
)

// Pair is an ordered pair of node IDs.
type Pair struct {
	From string
	To   string
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// String renders the pair as "From→To".
func (p Pair) String() string { return p.From + "→" + p.To }

// Cost is a tagged edge cost: either Unset or Known(value).
// The zero value is Unset.
type Cost struct {
	value float64
	known bool
}

// Unset returns the "no information" cost.
func Unset() Cost { return Cost{} }

// Known returns a cost carrying v.
func Known(v float64) Cost { return Cost{value: v, known: true} }

// IsKnown reports whether c carries a value.
func (c Cost) IsKnown() bool { return c.known }

// Value returns the carried value and whether it is known.
func (c Cost) Value() (float64, bool) { return c.value, c.known }

// String renders Known costs with two decimals and Unset as "unset".
func (c Cost) String() string {
	if !c.known {
		return "unset"
	}

	return fmt.Sprintf("%.2f", c.value)
}

func validate(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %v", ErrNegativeCost, v)
	}

	return nil
}
