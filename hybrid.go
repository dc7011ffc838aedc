// hybrid.go: exact-buffered hybrid counter over any top-N count-min sketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

// toppableSketch is the minimal surface SketchCounterHybrid needs from its
// wrapped sketch: any of TopNCountMinSketch, HashPairCMS, CountMeanMinSketch,
// HashPairCountMeanMinSketch, MultiHashPairTopNCMS, or LeastSquaresTopNSketch
// satisfies it.
type toppableSketch[K comparable] interface {
	Update(item K, count uint64) (uint64, error)
	Get(item K) uint64
	MostCommon(k int) []ItemCount[K]
}

// defaultHybridBatchSize is the default cumulative buffered count before
// SketchCounterHybrid flushes into the wrapped sketch.
const defaultHybridBatchSize = 10000

// SketchCounterHybrid buffers updates in an exact in-memory map until the
// cumulative count of buffered insertions reaches batchSize, then flushes
// the whole batch into the wrapped sketch in one pass. Reads combine the
// exact buffer with the sketch's estimate, so counts for items still
// sitting in the buffer are exact rather than approximate - a middle
// ground between a plain Go map (exact but unbounded memory) and a bare
// sketch (bounded memory, always approximate).
type SketchCounterHybrid[K comparable] struct {
	inner        toppableSketch[K]
	currentBatch map[K]uint64
	batchTotal   uint64
	batchSize    int
}

// NewSketchCounterHybrid wraps inner with an exact buffer, flushed once the
// cumulative count of buffered insertions reaches batchSize. batchSize <= 0
// defaults to 10,000.
func NewSketchCounterHybrid[K comparable](inner toppableSketch[K], batchSize int) *SketchCounterHybrid[K] {
	if batchSize <= 0 {
		batchSize = defaultHybridBatchSize
	}
	return &SketchCounterHybrid[K]{
		inner:        inner,
		currentBatch: make(map[K]uint64),
		batchSize:    batchSize,
	}
}

// Update buffers count occurrences of item exactly, flushing into the
// wrapped sketch once the cumulative buffered count reaches the configured
// batch size, and returns the combined exact+estimated count for item.
func (h *SketchCounterHybrid[K]) Update(item K, count uint64) (uint64, error) {
	h.currentBatch[item] += count
	h.batchTotal += count
	if h.batchTotal >= uint64(h.batchSize) {
		if err := h.flush(); err != nil {
			return 0, err
		}
	}
	return h.Get(item), nil
}

// Add records a single occurrence of item, equivalent to Update(item, 1).
func (h *SketchCounterHybrid[K]) Add(item K) (uint64, error) {
	return h.Update(item, 1)
}

// flush applies every buffered count to the wrapped sketch and clears the
// buffer. A partial flush can leave some items applied and some still
// buffered if the wrapped sketch returns an error partway through (e.g. a
// fixed-width counter overflow); callers that need atomicity should use an
// unbounded table back-end with this wrapper.
func (h *SketchCounterHybrid[K]) flush() error {
	for item, count := range h.currentBatch {
		if _, err := h.inner.Update(item, count); err != nil {
			return err
		}
		delete(h.currentBatch, item)
		h.batchTotal -= count
	}
	return nil
}

// Get returns the buffered exact count for item plus the wrapped sketch's
// estimate, so items not yet flushed still read back exactly.
func (h *SketchCounterHybrid[K]) Get(item K) uint64 {
	return h.currentBatch[item] + h.inner.Get(item)
}

// MostCommon flushes any buffered counts into the wrapped sketch, so its
// top-N tracker has seen every update, then delegates to it. The flush
// error is discarded here (MostCommon has no error return); callers who
// need to observe a flush failure should call Flush directly.
func (h *SketchCounterHybrid[K]) MostCommon(k int) []ItemCount[K] {
	_ = h.flush()
	return h.inner.MostCommon(k)
}

// Flush forces any buffered counts into the wrapped sketch immediately.
func (h *SketchCounterHybrid[K]) Flush() error {
	return h.flush()
}

// BufferedLen reports how many distinct items currently sit in the exact
// buffer, unflushed.
func (h *SketchCounterHybrid[K]) BufferedLen() int {
	return len(h.currentBatch)
}
