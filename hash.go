// hash.go: universal hash-function family generator and stable item hashing
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// hashFunc is a single draw from a UniversalHashFamily: f(x) = ((a*x+b) mod p) mod m.
type hashFunc struct {
	a, b, p, m uint64
}

func (h hashFunc) eval(x uint64) uint64 {
	// a, b < p < 2^32, so a*x mod p needs to avoid overflow on the
	// multiplication; reduce x into the same field first.
	ax := mulMod(h.a, x%h.p, h.p)
	return ((ax + h.b) % h.p) % h.m
}

// mulMod computes (a*b) mod p without overflowing uint64, since a, b < p <=
// 2^32-5 and the product can exceed 2^64 only when both operands approach
// 2^32; using uint64 math with p bounded by arbitraryLargePrime keeps the
// product within range (< 2^64).
func mulMod(a, b, p uint64) uint64 {
	return (a % p) * (b % p) % p
}

// pairKey uniquely identifies a drawn (a, b) pair for collision checking.
type pairKey struct{ a, b uint64 }

// UniversalHashFamily draws independent hash functions f(x) = ((a*x+b) mod p) mod m,
// following Cormen et al.'s universal hashing construction. p is fixed at
// arbitraryLargePrime (the largest 32-bit prime); m is the output range.
//
// Successive draws from the same family use distinct (a, b) pairs, checked
// as a single composite key — unlike the original Python source, whose
// `while a in a_set and b in b_set` check accepts a collision when only one
// coordinate repeats (see DESIGN.md's Open Questions).
type UniversalHashFamily struct {
	m    uint64
	seen map[pairKey]struct{}
	rng  *rand.Rand
}

// NewUniversalHashFamily creates a generator producing hash functions with
// output range [0, m). rng, if nil, is seeded from a fresh crypto-quality
// source; pass an explicit *rand.Rand for reproducible draws in tests.
func NewUniversalHashFamily(m uint64, rng *rand.Rand) *UniversalHashFamily {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &UniversalHashFamily{
		m:    m,
		seen: make(map[pairKey]struct{}),
		rng:  rng,
	}
}

// Draw samples a new (a, b) pair, redrawing on a pair-level collision, and
// returns the resulting hash function.
func (f *UniversalHashFamily) Draw() hashFunc {
	for {
		a := 1 + f.rng.Uint64N(arbitraryLargePrime-1)
		b := f.rng.Uint64N(arbitraryLargePrime)
		key := pairKey{a, b}
		if _, dup := f.seen[key]; dup {
			continue
		}
		f.seen[key] = struct{}{}
		return hashFunc{a: a, b: b, p: arbitraryLargePrime, m: f.m}
	}
}

// stableHash maps an arbitrary comparable item to a stable uint64, the way
// the original source's `hash(item)` handles both integers (identity) and
// strings (Python's string hash). Integers and unsigned integers map to
// themselves; strings and byte slices are hashed with xxhash, and every
// other type goes through murmurHash. Both are fast and, critically,
// deterministic across runs with the same input (unlike Go's builtin map
// hashing, which is randomized per-process).
func stableHash[K comparable](item K) uint64 {
	switch v := any(item).(type) {
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case string:
		return xxhash.Sum64String(v)
	case []byte:
		return xxhash.Sum64(v)
	default:
		return murmurHash(item)
	}
}

// murmurHash handles the residual case: any comparable type that isn't a
// plain integer, string, or byte slice (structs, arrays of comparable
// fields, etc). It encodes the value's %#v representation and runs it
// through murmur3, which the pack's blockchain service uses for exactly
// this kind of general-purpose stable hashing of encoded values.
func murmurHash[K comparable](item K) uint64 {
	encoded := fmt.Sprintf("%#v", item)
	return murmur3.Sum64([]byte(encoded))
}
