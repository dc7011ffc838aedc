// config.go: sizing and configuration for minsketch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "math"

// DefaultN is the default number of items tracked by a top-N tracker, as in
// the original minsketch's DEFAULT_N.
const DefaultN = 100

// arbitraryLargePrime is the fixed 32-bit prime used by UniversalHashFamily,
// Cormen et al.'s choice for universal hashing (Introduction to Algorithms).
const arbitraryLargePrime uint64 = 4294967291

// TableBackend selects one of the four counter storage back-ends.
type TableBackend int

const (
	// TableDense is an unbounded dense dynamic counter (uint64 per cell).
	TableDense TableBackend = iota
	// TableFixedWidth is a fixed-bit-width array (8/16/32/64 bits), default 16.
	TableFixedWidth
	// TableMatrix is a row-major matrix with a configurable unsigned width.
	TableMatrix
	// TableBitPacked packs counters into contiguous bitfields of the configured width.
	TableBitPacked
)

// HashStrategyKind selects how column indices are derived from an item.
type HashStrategyKind int

const (
	// HashNaive draws d independent hash functions from one UniversalHashFamily(w).
	HashNaive HashStrategyKind = iota
	// HashDouble derives d values from two base hashes: h1(x) + i*h2(x) mod w.
	HashDouble
)

// UpdateStrategyKind selects how a (hashes, delta) pair mutates the table.
type UpdateStrategyKind int

const (
	// UpdateNaive increments every row unconditionally.
	UpdateNaive UpdateStrategyKind = iota
	// UpdateConservative only raises rows below the post-update minimum.
	UpdateConservative
)

// LossyStrategyKind selects the periodic decrement policy.
type LossyStrategyKind int

const (
	// LossyNone never decrements (the default).
	LossyNone LossyStrategyKind = iota
	// LossyLCUAll decrements every counter each window (threshold +Inf).
	LossyLCUAll
	// LossyLCU1 decrements counters at or below 1 each window.
	LossyLCU1
	// LossyLCUWS decrements counters at or below the window count.
	LossyLCUWS
	// LossyLCUSWS decrements counters at or below sqrt(window count).
	LossyLCUSWS
)

// DefaultCounterBits is the default fixed-width/bit-packed counter size.
const DefaultCounterBits = 16

// Config holds the sizing and strategy selection for constructing a sketch.
//
// Delta and Epsilon are the classical count-min sketch error parameters:
// Delta is the failure probability, Epsilon the error margin. Depth and
// Width, if left at zero, are derived from them: Depth = ceil(ln(1/Delta)),
// Width = ceil(e/Epsilon).
type Config struct {
	// Delta is the failure probability. Must be in (0, 1]. Default: 1e-3.
	Delta float64

	// Epsilon is the error margin. Must be in (0, 1]. Default: 1e-3.
	Epsilon float64

	// Depth overrides the computed row count. Zero means "compute from Delta".
	Depth int

	// Width overrides the computed column count. Zero means "compute from Epsilon".
	Width uint64

	// N is the size of the top-N hot set tracked by TopN-flavored sketches.
	// Zero means DefaultN.
	N int

	// TableBackend selects the counter storage back-end. Default: TableDense.
	TableBackend TableBackend

	// CounterBits is the counter width for TableFixedWidth/TableBitPacked.
	// Must be one of 8, 16, 32, 64. Default: DefaultCounterBits.
	CounterBits int

	// HashStrategy selects naive or double hashing. Default: HashNaive.
	HashStrategy HashStrategyKind

	// UpdateStrategy selects naive or conservative update. Default: UpdateNaive.
	UpdateStrategy UpdateStrategyKind

	// LossyStrategy selects the periodic decrement policy. Default: LossyNone.
	LossyStrategy LossyStrategyKind

	// Gamma sizes the lossy-counting window (every floor(1/Gamma) updates
	// triggers a decay pass). Ignored when LossyStrategy is LossyNone.
	// Zero defaults to Epsilon.
	Gamma float64

	// Logger receives optional diagnostic messages; the only one currently
	// emitted is a Debug line with a hash-pair sketch's sizing. Lossy
	// decrements are not logged. If nil, NoOpLogger is used.
	Logger Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Delta:       1e-3,
		Epsilon:     1e-3,
		N:           DefaultN,
		CounterBits: DefaultCounterBits,
		Logger:      NoOpLogger{},
	}
}

// Validate checks configuration parameters, applies sensible defaults, and
// returns an error for anything that cannot be sensibly defaulted.
//
// This method is called automatically by the sketch constructors, so callers
// typically don't need to call it directly.
func (c *Config) Validate() error {
	if c.Delta <= 0 || c.Delta > 1 {
		return NewErrInvalidDelta(c.Delta)
	}
	if c.Epsilon <= 0 || c.Epsilon > 1 {
		return NewErrInvalidEpsilon(c.Epsilon)
	}

	if c.Depth <= 0 {
		c.Depth = int(math.Ceil(math.Log(1.0 / c.Delta)))
	}
	if c.Width == 0 {
		c.Width = uint64(math.Ceil(math.E / c.Epsilon))
	}
	if c.HashStrategy == HashDouble {
		c.Width = nextPrime(c.Width)
	}
	if c.N <= 0 {
		c.N = DefaultN
	}
	if c.CounterBits == 0 {
		c.CounterBits = DefaultCounterBits
	}
	switch c.CounterBits {
	case 8, 16, 32, 64:
	default:
		return NewErrInvalidCounterBits(c.CounterBits)
	}

	if c.LossyStrategy != LossyNone && c.Gamma <= 0 {
		c.Gamma = c.Epsilon
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	return nil
}
