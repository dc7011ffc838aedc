// heap.go: a bounded min-heap over (item, count) pairs
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "container/heap"

// heapEntry pairs an item with its tracked count.
type heapEntry[K comparable] struct {
	item  K
	count uint64
}

// MinHeap is a binary min-heap over heapEntry, keyed by count, with an
// auxiliary item->index map so a tracked item's count can be raised or
// lowered in place (the decrease/increase-key operation container/heap
// doesn't give you for free) instead of removing and re-inserting it.
type MinHeap[K comparable] struct {
	entries []heapEntry[K]
	index   map[K]int
}

// NewMinHeap returns an empty heap.
func NewMinHeap[K comparable]() *MinHeap[K] {
	return &MinHeap[K]{index: make(map[K]int)}
}

// container/heap.Interface plumbing.

func (h *MinHeap[K]) Len() int { return len(h.entries) }

func (h *MinHeap[K]) Less(i, j int) bool { return h.entries[i].count < h.entries[j].count }

func (h *MinHeap[K]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].item] = i
	h.index[h.entries[j].item] = j
}

func (h *MinHeap[K]) Push(x interface{}) {
	e := x.(heapEntry[K])
	h.index[e.item] = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *MinHeap[K]) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	delete(h.index, e.item)
	return e
}

// Public API.

// PushItem inserts item with the given count.
func (h *MinHeap[K]) PushItem(item K, count uint64) {
	heap.Push(h, heapEntry[K]{item: item, count: count})
}

// PopMin removes and returns the smallest-count entry.
func (h *MinHeap[K]) PopMin() (item K, count uint64, ok bool) {
	if h.Len() == 0 {
		return item, 0, false
	}
	e := heap.Pop(h).(heapEntry[K])
	return e.item, e.count, true
}

// Peek returns the smallest-count entry without removing it.
func (h *MinHeap[K]) Peek() (item K, count uint64, ok bool) {
	if h.Len() == 0 {
		return item, 0, false
	}
	e := h.entries[0]
	return e.item, e.count, true
}

// Contains reports whether item is currently tracked.
func (h *MinHeap[K]) Contains(item K) bool {
	_, ok := h.index[item]
	return ok
}

// CountOf returns the tracked count for item, if present.
func (h *MinHeap[K]) CountOf(item K) (uint64, bool) {
	idx, ok := h.index[item]
	if !ok {
		return 0, false
	}
	return h.entries[idx].count, true
}

// UpdateCount sets item's count in place and restores heap order. It is a
// no-op returning false if item isn't tracked.
func (h *MinHeap[K]) UpdateCount(item K, newCount uint64) bool {
	idx, ok := h.index[item]
	if !ok {
		return false
	}
	h.entries[idx].count = newCount
	heap.Fix(h, idx)
	return true
}

// PushPop inserts (item, count) and then removes and returns the new
// minimum in one step - equivalent to, but cheaper than, a Push followed
// by a PopMin when the heap is already at capacity.
func (h *MinHeap[K]) PushPop(item K, count uint64) (evicted K, evictedCount uint64) {
	if h.Len() > 0 && h.entries[0].count < count {
		root := h.entries[0]
		delete(h.index, root.item)
		h.entries[0] = heapEntry[K]{item: item, count: count}
		h.index[item] = 0
		heap.Fix(h, 0)
		return root.item, root.count
	}
	return item, count
}

// NLargest returns up to k (item, count) pairs ordered by count descending,
// without mutating the receiver.
func (h *MinHeap[K]) NLargest(k int) []heapEntry[K] {
	clone := &MinHeap[K]{
		entries: append([]heapEntry[K](nil), h.entries...),
		index:   make(map[K]int, len(h.entries)),
	}
	for i, e := range clone.entries {
		clone.index[e.item] = i
	}

	n := clone.Len()
	if k > n {
		k = n
	}
	out := make([]heapEntry[K], k)
	for clone.Len() > 0 {
		e := heap.Pop(clone).(heapEntry[K])
		if i := clone.Len(); i < k {
			out[i] = e
		}
	}
	return out
}
