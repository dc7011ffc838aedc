// lossy.go: lossy counting window strategies
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "math"

// LossyStrategy periodically decays every counter in a table by 1, trading
// exact tail counts for bounded memory growth under skewed, long-running
// streams. gamma controls the window length: every floor(1/gamma) updates,
// counters at or below the strategy's threshold function are decremented.
type LossyStrategy struct {
	kind          LossyStrategyKind
	gamma         float64
	windowSize    uint64
	countInWindow uint64
	windowCount   uint64
}

// NewLossyStrategy builds a LossyStrategy of the given kind. gamma must be
// in (0, 1]; LossyNone ignores gamma entirely.
func NewLossyStrategy(kind LossyStrategyKind, gamma float64) *LossyStrategy {
	windowSize := uint64(1)
	if gamma > 0 {
		windowSize = uint64(1.0 / gamma)
		if windowSize == 0 {
			windowSize = 1
		}
	}
	return &LossyStrategy{kind: kind, gamma: gamma, windowSize: windowSize}
}

// threshold returns the current tau: counters at or below it are eligible
// for decay once a window elapses.
func (s *LossyStrategy) threshold() uint64 {
	switch s.kind {
	case LossyLCUAll:
		return positiveInfinity
	case LossyLCU1:
		return 1
	case LossyLCUWS:
		return s.windowCount
	case LossyLCUSWS:
		return uint64(math.Sqrt(float64(s.windowCount)))
	default:
		return 0
	}
}

// Apply advances the window counter and, once a full window of updates has
// elapsed, decrements every counter at or below the threshold. A no-op
// strategy (LossyNone) never triggers.
func (s *LossyStrategy) Apply(table SketchTable) {
	if s.kind == LossyNone {
		return
	}

	s.countInWindow++
	if s.countInWindow < s.windowSize {
		return
	}

	s.countInWindow = 0
	s.windowCount++
	table.DecrementAll(0, s.threshold())
}
