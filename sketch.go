// sketch.go: the base count-min sketch and its top-N variant
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

// CountMinSketch is a probabilistic frequency table: point queries always
// overestimate (never underestimate) the true count, and the overestimate
// shrinks as width and depth grow. It is the workhorse every other sketch
// in this package builds on.
type CountMinSketch[K comparable] struct {
	hashing HashingStrategy[K]
	table   SketchTable
	update  UpdateStrategy
	lossy   *LossyStrategy
	logger  Logger
	total   uint64
}

// NewCountMinSketch validates cfg, applies its defaults, and constructs a
// sketch of the requested shape and strategy mix.
func NewCountMinSketch[K comparable](cfg Config) (*CountMinSketch[K], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hashing, err := newHashingStrategyFromConfig[K](cfg, nil)
	if err != nil {
		return nil, err
	}
	return &CountMinSketch[K]{
		hashing: hashing,
		table:   newTableFromConfig(cfg),
		update:  newUpdateStrategyFromConfig(cfg),
		lossy:   newLossyStrategyFromConfig(cfg),
		logger:  cfg.Logger,
	}, nil
}

// Add records a single occurrence of item, equivalent to Update(item, 1).
func (s *CountMinSketch[K]) Add(item K) (uint64, error) {
	return s.Update(item, 1)
}

// Update records count occurrences of item and returns the strategy's
// estimate of item's count immediately after this update.
func (s *CountMinSketch[K]) Update(item K, count uint64) (uint64, error) {
	cols := s.hashing.Hash(item)
	s.lossy.Apply(s.table)
	estimate, err := s.update.Apply(s.table, cols, count)
	if err != nil {
		return 0, err
	}
	s.total += count
	return estimate, nil
}

// Get returns the current estimated count for item: the minimum across its
// d row readings, which count-min sketch theory guarantees never
// underestimates the true count.
func (s *CountMinSketch[K]) Get(item K) uint64 {
	cols := s.hashing.Hash(item)
	min := positiveInfinity
	for row, col := range cols {
		if v := s.table.Get(row, col); v < min {
			min = v
		}
	}
	return min
}

// Depth returns the number of hash rows.
func (s *CountMinSketch[K]) Depth() int { return s.table.Depth() }

// Width returns the number of hash columns.
func (s *CountMinSketch[K]) Width() uint64 { return s.table.Width() }

// Total returns the sum of every weight ever passed to Update/Add.
func (s *CountMinSketch[K]) Total() uint64 { return s.total }

// InnerProduct estimates sum_x this[x]*other[x] without materializing
// either stream, the standard count-min sketch join-size estimator: each
// row's dot product is itself an unbiased overestimate, so taking the
// minimum across rows gives the tightest bound, mirroring how Get takes
// the minimum across rows for a point query.
func (s *CountMinSketch[K]) InnerProduct(other *CountMinSketch[K]) (uint64, error) {
	if s.Depth() != other.Depth() || s.Width() != other.Width() {
		return 0, NewErrDimensionMismatch(s.Depth(), int(s.Width()), other.Depth(), int(other.Width()))
	}

	min := positiveInfinity
	for row := 0; row < s.Depth(); row++ {
		var dot uint64
		for col := uint64(0); col < s.Width(); col++ {
			dot += s.table.Get(row, col) * other.table.Get(row, col)
		}
		if dot < min {
			min = dot
		}
	}
	return min, nil
}

// TopNCountMinSketch layers a bounded top-N tracker on top of a
// CountMinSketch, so frequent items can be enumerated without a full scan
// of the item domain.
type TopNCountMinSketch[K comparable] struct {
	*CountMinSketch[K]
	topN *TopNTracker[K]
}

// NewTopNCountMinSketch builds a TopNCountMinSketch tracking cfg.N items.
func NewTopNCountMinSketch[K comparable](cfg Config) (*TopNCountMinSketch[K], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := NewCountMinSketch[K](cfg)
	if err != nil {
		return nil, err
	}
	return &TopNCountMinSketch[K]{
		CountMinSketch: base,
		topN:           NewTopNTracker[K](cfg.N),
	}, nil
}

// Update records count occurrences of item, updates the underlying sketch,
// and reports the new estimate to the top-N tracker before returning it.
func (s *TopNCountMinSketch[K]) Update(item K, count uint64) (uint64, error) {
	estimate, err := s.CountMinSketch.Update(item, count)
	if err != nil {
		return 0, err
	}
	s.topN.Update(item, estimate)
	return estimate, nil
}

// Add records a single occurrence of item, equivalent to Update(item, 1).
func (s *TopNCountMinSketch[K]) Add(item K) (uint64, error) {
	return s.Update(item, 1)
}

// MostCommon returns up to k tracked items ordered by estimated count
// descending.
func (s *TopNCountMinSketch[K]) MostCommon(k int) []ItemCount[K] {
	return s.topN.MostCommon(k)
}

// TrackedLen reports how many items the top-N tracker currently holds.
func (s *TopNCountMinSketch[K]) TrackedLen() int {
	return s.topN.Len()
}
