// countmean.go: count-mean-min refinement over the base and hash-pair sketches
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import (
	"math"
	"sort"
)

// medianFloat64 returns the median of vals without mutating the input.
func medianFloat64(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// CountMeanMinSketch refines the plain count-min point query by estimating,
// per row, how much of that row's reading is collision noise (its
// UpdateStrategy's Baselines) and taking the median of the de-biased
// readings instead of their minimum - usually tighter than the min
// estimator, at the cost of losing the one-sided error guarantee (the
// median can occasionally underestimate).
type CountMeanMinSketch[K comparable] struct {
	*TopNCountMinSketch[K]
}

// NewCountMeanMinSketch builds a CountMeanMinSketch from cfg.
func NewCountMeanMinSketch[K comparable](cfg Config) (*CountMeanMinSketch[K], error) {
	base, err := NewTopNCountMinSketch[K](cfg)
	if err != nil {
		return nil, err
	}
	return &CountMeanMinSketch[K]{TopNCountMinSketch: base}, nil
}

// Get returns min(minEstimate, max(0, median(rowValue - rowBaseline))),
// keeping the classical min estimator as a ceiling so the refinement can
// only ever tighten, never loosen, the point query.
func (s *CountMeanMinSketch[K]) Get(item K) uint64 {
	cols := s.hashing.Hash(item)
	values := make([]float64, len(cols))
	minVal := positiveInfinity
	for row, col := range cols {
		v := s.table.Get(row, col)
		values[row] = float64(v)
		if v < minVal {
			minVal = v
		}
	}

	baselines := s.update.Baselines(s.table, cols)
	adjusted := make([]float64, len(cols))
	for i := range values {
		adjusted[i] = values[i] - baselines[i]
	}

	refined := medianFloat64(adjusted)
	if refined < 0 {
		refined = 0
	}
	estimate := uint64(math.Round(refined))
	if minVal < estimate {
		return minVal
	}
	return estimate
}

// MostCommon re-ranks every currently tracked item by its refined Get
// estimate rather than the raw estimate recorded at update time, then
// returns the top k.
func (s *CountMeanMinSketch[K]) MostCommon(k int) []ItemCount[K] {
	return reRankMostCommon[K](s.TopNCountMinSketch.MostCommon(s.TrackedLen()), s.Get, k)
}

// reRankMostCommon refines a tracker's candidate list with get and returns
// the top k by refined count, shared by every count-mean-min variant.
func reRankMostCommon[K comparable](candidates []ItemCount[K], get func(K) uint64, k int) []ItemCount[K] {
	refined := make([]ItemCount[K], len(candidates))
	for i, ic := range candidates {
		refined[i] = ItemCount[K]{Item: ic.Item, Count: get(ic.Item)}
	}
	sort.Slice(refined, func(i, j int) bool { return refined[i].Count > refined[j].Count })
	if k > len(refined) {
		k = len(refined)
	}
	if k < 0 {
		k = 0
	}
	return refined[:k]
}

// HashPairCountMeanMinSketch layers the same count-mean-min refinement over
// a double-hashed HashPairCMS, restoring the pairing the original module
// offered between its two "second-order" estimators.
type HashPairCountMeanMinSketch[K comparable] struct {
	*HashPairCMS[K]
}

// NewHashPairCountMeanMinSketch builds a HashPairCountMeanMinSketch from cfg.
func NewHashPairCountMeanMinSketch[K comparable](cfg Config) (*HashPairCountMeanMinSketch[K], error) {
	base, err := NewHashPairCMS[K](cfg)
	if err != nil {
		return nil, err
	}
	return &HashPairCountMeanMinSketch[K]{HashPairCMS: base}, nil
}

// Get applies the same de-biased-median refinement as CountMeanMinSketch,
// but over the double-hashed row readings.
func (s *HashPairCountMeanMinSketch[K]) Get(item K) uint64 {
	cols := s.hashing.Hash(item)
	values := make([]float64, len(cols))
	minVal := positiveInfinity
	for row, col := range cols {
		v := s.table.Get(row, col)
		values[row] = float64(v)
		if v < minVal {
			minVal = v
		}
	}

	baselines := s.update.Baselines(s.table, cols)
	adjusted := make([]float64, len(cols))
	for i := range values {
		adjusted[i] = values[i] - baselines[i]
	}

	refined := medianFloat64(adjusted)
	if refined < 0 {
		refined = 0
	}
	estimate := uint64(math.Round(refined))
	if minVal < estimate {
		return minVal
	}
	return estimate
}

// MostCommon re-ranks every currently tracked item by its refined Get
// estimate and returns the top k.
func (s *HashPairCountMeanMinSketch[K]) MostCommon(k int) []ItemCount[K] {
	return reRankMostCommon[K](s.HashPairCMS.MostCommon(s.TrackedLen()), s.Get, k)
}
