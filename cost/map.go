// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"
	"sort"
)

// Map is a symmetric edge-cost snapshot.
type Map struct {
	entries map[Pair]Cost
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[Pair]Cost)}
}

// Declare registers the pair a–b as Unset if it is not present yet.
// Declared pairs survive Reset and are listed by Pairs.
func (m *Map) Declare(a, b string) {
	p := Pair{From: a, To: b}
	if _, ok := m.entries[p]; ok {
		return
	}
	m.entries[p] = Unset()
	m.entries[p.Reverse()] = Unset()
}

// Set stores v for both a→b and b→a.
func (m *Map) Set(a, b string, v float64) error {
	if err := validate(v); err != nil {
		return fmt.Errorf("cost: set %s→%s: %w", a, b, err)
	}
	p := Pair{From: a, To: b}
	m.entries[p] = Known(v)
	m.entries[p.Reverse()] = Known(v)

	return nil
}

// Relax stores v for a–b if the pair is Unset or v is strictly cheaper than
// the current value. It reports whether the entry changed.
func (m *Map) Relax(a, b string, v float64) (bool, error) {
	if err := validate(v); err != nil {
		return false, fmt.Errorf("cost: relax %s→%s: %w", a, b, err)
	}
	if cur, ok := m.entries[Pair{From: a, To: b}].Value(); ok && cur <= v {
		return false, nil
	}

	return true, m.Set(a, b, v)
}

// Get returns the tagged cost of a→b; absent pairs are Unset.
func (m *Map) Get(a, b string) Cost {
	return m.entries[Pair{From: a, To: b}]
}

// Lookup returns the known cost of a→b or an error wrapping ErrMissingEdgeCost.
func (m *Map) Lookup(a, b string) (float64, error) {
	v, ok := m.entries[Pair{From: a, To: b}].Value()
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrMissingEdgeCost, a, b)
	}

	return v, nil
}

// Reset turns every entry back to Unset, keeping the set of declared pairs.
func (m *Map) Reset() {
	for p := range m.entries {
		m.entries[p] = Unset()
	}
}

// Len returns the number of ordered pairs held (twice the number of undirected edges).
func (m *Map) Len() int { return len(m.entries) }

// Pairs returns all ordered pairs sorted by (From, To).
func (m *Map) Pairs() []Pair {
	out := make([]Pair, 0, len(m.entries))
	for p := range m.entries {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := &Map{entries: make(map[Pair]Cost, len(m.entries))}
	for p, v := range m.entries {
		c.entries[p] = v
	}

	return c
}

// Equal reports whether m and other hold the same pairs with the same tagged costs.
func (m *Map) Equal(other *Map) bool {
	if other == nil || len(m.entries) != len(other.entries) {
		return false
	}
	for p, v := range m.entries {
		if w, ok := other.entries[p]; !ok || w != v {
			return false
		}
	}

	return true
}
