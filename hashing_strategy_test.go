// hashing_strategy_test.go: unit tests for row-index derivation strategies
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import (
	"math/rand/v2"
	"testing"
)

func TestNaiveHashingStrategyShapeAndRange(t *testing.T) {
	gen := NewUniversalHashFamily(97, rand.New(rand.NewPCG(1, 1)))
	s := NewNaiveHashingStrategy[string](5, 97, gen)

	if s.Depth() != 5 {
		t.Fatalf("Depth() = %d, want 5", s.Depth())
	}
	if s.Width() != 97 {
		t.Fatalf("Width() = %d, want 97", s.Width())
	}

	cols := s.Hash("some-item")
	if len(cols) != 5 {
		t.Fatalf("Hash() returned %d columns, want 5", len(cols))
	}
	for i, c := range cols {
		if c >= 97 {
			t.Errorf("col[%d] = %d, want < 97", i, c)
		}
	}
}

func TestNaiveHashingStrategyDeterministic(t *testing.T) {
	gen := NewUniversalHashFamily(97, rand.New(rand.NewPCG(1, 1)))
	s := NewNaiveHashingStrategy[string](4, 97, gen)

	a := s.Hash("repeat-me")
	b := s.Hash("repeat-me")
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Hash not deterministic at row %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestNewDoubleHashingStrategyRejectsNonPrimeWidth(t *testing.T) {
	_, err := NewDoubleHashingStrategy[string](4, 100, nil)
	if !IsSizingError(err) {
		t.Fatalf("err = %v, want a sizing error", err)
	}
}

func TestDoubleHashingStrategyShapeAndRange(t *testing.T) {
	s, err := NewDoubleHashingStrategy[string](6, 101, nil)
	if err != nil {
		t.Fatalf("NewDoubleHashingStrategy() = %v, want nil", err)
	}

	cols := s.Hash("item")
	if len(cols) != 6 {
		t.Fatalf("Hash() returned %d columns, want 6", len(cols))
	}
	for i, c := range cols {
		if c >= 101 {
			t.Errorf("col[%d] = %d, want < 101", i, c)
		}
	}
}

func TestDoubleHashingStrategySharedGenerator(t *testing.T) {
	gen := NewUniversalHashFamily(arbitraryLargePrime, rand.New(rand.NewPCG(5, 5)))

	s1, err := NewDoubleHashingStrategy[string](3, 11, gen)
	if err != nil {
		t.Fatalf("first strategy: %v", err)
	}
	s2, err := NewDoubleHashingStrategy[string](3, 11, gen)
	if err != nil {
		t.Fatalf("second strategy: %v", err)
	}

	// Drawing from the same generator must not reuse an (a, b) pair.
	if s1.firstHash == s2.firstHash && s1.secondHash == s2.secondHash {
		t.Error("two strategies sharing a generator drew identical hash pairs")
	}
}
