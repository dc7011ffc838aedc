// hashing_strategy.go: derives per-row column indices for an item
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

// HashingStrategy yields, for an item, a sequence of depth column-indices in [0, width).
type HashingStrategy[K comparable] interface {
	// Hash returns one column index per row.
	Hash(item K) []uint64

	// Depth returns the number of rows this strategy produces indices for.
	Depth() int

	// Width returns the table width these indices are valid against.
	Width() uint64
}

// NaiveHashingStrategy pre-draws depth independent functions from a single
// UniversalHashFamily(width); row i uses function i.
type NaiveHashingStrategy[K comparable] struct {
	depth  int
	width  uint64
	hashes []hashFunc
}

// NewNaiveHashingStrategy draws depth independent hash functions of range width
// from gen (or a fresh UniversalHashFamily(width) if gen is nil).
func NewNaiveHashingStrategy[K comparable](depth int, width uint64, gen *UniversalHashFamily) *NaiveHashingStrategy[K] {
	if gen == nil {
		gen = NewUniversalHashFamily(width, nil)
	}
	hashes := make([]hashFunc, depth)
	for i := range hashes {
		hashes[i] = gen.Draw()
	}
	return &NaiveHashingStrategy[K]{depth: depth, width: width, hashes: hashes}
}

func (s *NaiveHashingStrategy[K]) Hash(item K) []uint64 {
	x := stableHash(item)
	out := make([]uint64, s.depth)
	for i := 0; i < s.depth; i++ {
		out[i] = s.hashes[i].eval(x)
	}
	return out
}

func (s *NaiveHashingStrategy[K]) Depth() int   { return s.depth }
func (s *NaiveHashingStrategy[K]) Width() uint64 { return s.width }

// DoubleHashingStrategy derives depth column indices from two base hash
// functions h1, h2 drawn from a UniversalHashFamily over the large prime:
// row i = (h1(x) + i*h2(x)) mod width. Based on Kirsch & Mitzenmacher (2008),
// "Less Hashing, Same Performance: Building a Better Bloom Filter".
//
// width must be prime (spec §4.3); the generator may be shared across
// sketches (e.g. MultiHashPairTopNCMS's copies) to guarantee the
// independence of their (h1, h2) pairs.
type DoubleHashingStrategy[K comparable] struct {
	depth      int
	width      uint64
	gen        *UniversalHashFamily
	firstHash  hashFunc
	secondHash hashFunc
}

// NewDoubleHashingStrategy draws h1, h2 from gen (or a fresh
// UniversalHashFamily(arbitraryLargePrime) if gen is nil). Returns
// SizingError if width is not prime.
func NewDoubleHashingStrategy[K comparable](depth int, width uint64, gen *UniversalHashFamily) (*DoubleHashingStrategy[K], error) {
	if !isPrime(width) {
		return nil, NewErrSizingError(width)
	}
	if gen == nil {
		gen = NewUniversalHashFamily(arbitraryLargePrime, nil)
	}
	return &DoubleHashingStrategy[K]{
		depth:      depth,
		width:      width,
		gen:        gen,
		firstHash:  gen.Draw(),
		secondHash: gen.Draw(),
	}, nil
}

func (s *DoubleHashingStrategy[K]) Hash(item K) []uint64 {
	x := stableHash(item)
	first := s.firstHash.eval(x)
	second := s.secondHash.eval(x)
	out := make([]uint64, s.depth)
	for i := 0; i < s.depth; i++ {
		out[i] = (first + uint64(i)*second) % s.width
	}
	return out
}

func (s *DoubleHashingStrategy[K]) Depth() int    { return s.depth }
func (s *DoubleHashingStrategy[K]) Width() uint64 { return s.width }
