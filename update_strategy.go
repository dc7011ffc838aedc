// update_strategy.go: naive vs conservative update semantics
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

// UpdateStrategy decides how a weighted item update is applied across the
// d rows a HashingStrategy mapped it to, and how to estimate the noise a
// count-mean-min refinement should subtract from each row's raw reading.
type UpdateStrategy interface {
	// Apply adds delta to table at each (row, cols[row]) pair and returns the
	// resulting estimate (the strategy's definition of "the count after this
	// update").
	Apply(table SketchTable, cols []uint64, delta uint64) (uint64, error)

	// Baselines returns, for each row, the expected over-count a reading at
	// that row carries from hash collisions - used by count-mean-min to
	// de-bias Get/MostCommon.
	Baselines(table SketchTable, cols []uint64) []float64
}

// NaiveUpdateStrategy increments every row unconditionally and reports the
// minimum of the post-increment values, the textbook count-min update.
type NaiveUpdateStrategy struct{}

func NewNaiveUpdateStrategy() *NaiveUpdateStrategy { return &NaiveUpdateStrategy{} }

func (NaiveUpdateStrategy) Apply(table SketchTable, cols []uint64, delta uint64) (uint64, error) {
	min := positiveInfinity
	for row, col := range cols {
		v, err := table.Increment(row, col, delta)
		if err != nil {
			return 0, err
		}
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Baselines for the naive strategy uses the sketch's grand total as the
// row-independent estimate of collision noise, per the count-mean-min
// construction: noise_i = (total - value) / (w - 1).
func (NaiveUpdateStrategy) Baselines(table SketchTable, cols []uint64) []float64 {
	out := make([]float64, len(cols))
	total := float64(table.Total())
	w := float64(table.Width())
	for row, col := range cols {
		value := float64(table.Get(row, col))
		out[row] = (total - value) / (w - 1)
	}
	return out
}

// ConservativeUpdateStrategy only raises counters that sit below the
// post-update minimum, trading a slightly more expensive update for a
// tighter sketch (conservative update never overestimates more than naive,
// and often a great deal less).
type ConservativeUpdateStrategy struct{}

func NewConservativeUpdateStrategy() *ConservativeUpdateStrategy {
	return &ConservativeUpdateStrategy{}
}

// Apply computes the value every row would reach under a naive update
// (current minimum plus delta), then only raises rows that are currently
// below that target - rows already at or above it are left untouched.
func (ConservativeUpdateStrategy) Apply(table SketchTable, cols []uint64, delta uint64) (uint64, error) {
	current := make([]uint64, len(cols))
	min := positiveInfinity
	for row, col := range cols {
		v := table.Get(row, col)
		current[row] = v
		if v < min {
			min = v
		}
	}
	target := min + delta

	for row, col := range cols {
		if current[row] < target {
			if _, err := table.Increment(row, col, target-current[row]); err != nil {
				return 0, err
			}
		}
	}
	return target, nil
}

func (ConservativeUpdateStrategy) Baselines(table SketchTable, cols []uint64) []float64 {
	out := make([]float64, len(cols))
	w := float64(table.Width())
	for row, col := range cols {
		rowSum := float64(table.RowSum(row))
		value := float64(table.Get(row, col))
		out[row] = (rowSum - value) / (w - 1)
	}
	return out
}
