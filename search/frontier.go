// SPDX-License-Identifier: MIT

package search

import "container/heap"

// Frontier is a min-priority queue of node IDs keyed by cost.
//
// It uses the lazy decrease-key strategy: callers push a node again when they
// find a cheaper route, and discard stale entries when they pop a node that is
// already settled. Entries with equal priority pop in insertion order.
type Frontier struct {
	items frontierHeap
	seq   uint64
}

// NewFrontier returns an empty Frontier with room for capacity entries.
func NewFrontier(capacity int) *Frontier {
	f := &Frontier{items: make(frontierHeap, 0, capacity)}
	heap.Init(&f.items)

	return f
}

// Push adds id with the given priority.
func (f *Frontier) Push(id string, priority float64) {
	f.seq++
	heap.Push(&f.items, &frontierItem{id: id, priority: priority, seq: f.seq})
}

// Pop removes and returns the entry with the lowest priority.
// It panics if the frontier is empty; check Len first.
func (f *Frontier) Pop() (string, float64) {
	item := heap.Pop(&f.items).(*frontierItem)

	return item.id, item.priority
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return f.items.Len() }

type frontierItem struct {
	id       string
	priority float64
	seq      uint64 // insertion order, breaks priority ties
}

type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(*frontierItem)) }

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
