// doublehash.go: double-hashed sketches (single copy and multi-copy)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "math"

// HashPairCMS is a TopNCountMinSketch that derives its d row indices from a
// single pair of hash functions (Kirsch & Mitzenmacher double hashing)
// instead of d independent draws, at the cost of an epsilon-only failure
// bound: EffectiveDelta = e^-depth, which is independent of, and may be
// larger or smaller than, the delta the caller asked for.
type HashPairCMS[K comparable] struct {
	*TopNCountMinSketch[K]

	// EffectiveDelta is the true failure probability this sketch's depth
	// actually achieves (e^-depth), which can exceed the Delta requested in
	// Config since depth here is sized from Epsilon alone.
	EffectiveDelta float64
}

// NewHashPairCMS builds a HashPairCMS. Width and Depth, if left zero in
// cfg, are sized from Epsilon alone: Width = next_prime(ceil(2e/Epsilon)),
// Depth = ceil(ln(1 / (Epsilon - Epsilon/(2e^2)))) - the original module's
// sizing, which puts Epsilon where the cited double-hashing paper's depth
// formula uses Delta, and a departure from the independent-draw sketch's
// Delta-driven depth (see the Open Questions in the design notes). A zero
// Delta defaults to 1e-3; it does not affect the sizing.
func NewHashPairCMS[K comparable](cfg Config) (*HashPairCMS[K], error) {
	cfg.HashStrategy = HashDouble
	if cfg.Delta <= 0 {
		cfg.Delta = 1e-3
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = 1e-3
	}
	sizeHashPairCMS(&cfg)

	base, err := NewTopNCountMinSketch[K](cfg)
	if err != nil {
		return nil, err
	}

	effectiveDelta := math.Exp(-float64(cfg.Depth))
	if cfg.Logger != nil {
		cfg.Logger.Debug("hash-pair sketch sized", "depth", cfg.Depth, "width", cfg.Width, "effective_delta", effectiveDelta)
	}

	return &HashPairCMS[K]{
		TopNCountMinSketch: base,
		EffectiveDelta:     effectiveDelta,
	}, nil
}

// sizeHashPairCMS fills in Width and Depth from Epsilon alone, the original
// module's sizing for a single hash-pair sketch, when the caller left them zero.
func sizeHashPairCMS(cfg *Config) {
	e := math.E
	if cfg.Width == 0 {
		cfg.Width = nextPrime(uint64(math.Ceil(2 * e / cfg.Epsilon)))
	}
	if cfg.Depth <= 0 {
		cfg.Depth = int(math.Ceil(math.Log(1.0 / (cfg.Epsilon - cfg.Epsilon/(2*e*e)))))
		if cfg.Depth <= 0 {
			cfg.Depth = 1
		}
	}
}

// MultiHashPairTopNCMS runs several independent HashPairCMS copies and
// takes the minimum estimate across them, trading the single pair's
// looser EffectiveDelta for the union bound over copies: with
// copies = ceil(ln(1/Delta)/ln(1/Epsilon)), the combined failure
// probability meets the originally requested Delta.
type MultiHashPairTopNCMS[K comparable] struct {
	copies []*HashPairCMS[K]
	topN   *TopNTracker[K]
	n      int
}

// NewMultiHashPairTopNCMS builds copies independent HashPairCMS sketches
// sharing one UniversalHashFamily, so their (h1, h2) pairs are drawn from
// the same collision-checked pool.
func NewMultiHashPairTopNCMS[K comparable](cfg Config) (*MultiHashPairTopNCMS[K], error) {
	if cfg.Delta <= 0 {
		cfg.Delta = 1e-3
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = 1e-3
	}
	if cfg.N <= 0 {
		cfg.N = DefaultN
	}

	numCopies := int(math.Ceil(math.Log(1.0/cfg.Delta) / math.Log(1.0/cfg.Epsilon)))
	if numCopies < 1 {
		numCopies = 1
	}

	gen := NewUniversalHashFamily(arbitraryLargePrime, nil)
	copies := make([]*HashPairCMS[K], numCopies)
	for i := 0; i < numCopies; i++ {
		copyCfg := cfg
		copyCfg.HashStrategy = HashDouble

		hp, err := newHashPairCMSWithGen[K](copyCfg, gen)
		if err != nil {
			return nil, err
		}
		copies[i] = hp
	}

	return &MultiHashPairTopNCMS[K]{
		copies: copies,
		topN:   NewTopNTracker[K](cfg.N),
		n:      cfg.N,
	}, nil
}

// newHashPairCMSWithGen is NewHashPairCMS, but draws its hash pair from a
// caller-supplied generator instead of a fresh one, so multiple copies
// share one collision-checked (a, b) pool.
func newHashPairCMSWithGen[K comparable](cfg Config, gen *UniversalHashFamily) (*HashPairCMS[K], error) {
	cfg.HashStrategy = HashDouble
	sizeHashPairCMS(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hashing, err := NewDoubleHashingStrategy[K](cfg.Depth, cfg.Width, gen)
	if err != nil {
		return nil, err
	}

	inner := &CountMinSketch[K]{
		hashing: hashing,
		table:   newTableFromConfig(cfg),
		update:  newUpdateStrategyFromConfig(cfg),
		lossy:   newLossyStrategyFromConfig(cfg),
		logger:  cfg.Logger,
	}

	effectiveDelta := math.Exp(-float64(cfg.Depth))
	return &HashPairCMS[K]{
		TopNCountMinSketch: &TopNCountMinSketch[K]{
			CountMinSketch: inner,
			topN:           NewTopNTracker[K](cfg.N),
		},
		EffectiveDelta: effectiveDelta,
	}, nil
}

// Update records count occurrences of item across every copy and returns
// the minimum of their post-update estimates.
func (m *MultiHashPairTopNCMS[K]) Update(item K, count uint64) (uint64, error) {
	min := positiveInfinity
	for _, c := range m.copies {
		v, err := c.TopNCountMinSketch.CountMinSketch.Update(item, count)
		if err != nil {
			return 0, err
		}
		if v < min {
			min = v
		}
	}
	m.topN.Update(item, min)
	return min, nil
}

// Add records a single occurrence of item, equivalent to Update(item, 1).
func (m *MultiHashPairTopNCMS[K]) Add(item K) (uint64, error) {
	return m.Update(item, 1)
}

// Get returns the minimum estimate for item across every copy.
func (m *MultiHashPairTopNCMS[K]) Get(item K) uint64 {
	min := positiveInfinity
	for _, c := range m.copies {
		if v := c.Get(item); v < min {
			min = v
		}
	}
	return min
}

// MostCommon returns up to k tracked items ordered by estimated count
// descending.
func (m *MultiHashPairTopNCMS[K]) MostCommon(k int) []ItemCount[K] {
	return m.topN.MostCommon(k)
}

// NumCopies reports how many independent HashPairCMS copies back this sketch.
func (m *MultiHashPairTopNCMS[K]) NumCopies() int { return len(m.copies) }
