// primes_test.go: unit tests for primality helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "testing"

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{17, true},
		{100, false},
		{101, true},
		{7919, true},
		{7920, false},
	}

	for _, tt := range tests {
		if got := isPrime(tt.n); got != tt.want {
			t.Errorf("isPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 3},
		{4, 5},
		{100, 101},
		{101, 101},
		{7921, 7927},
	}

	for _, tt := range tests {
		got := nextPrime(tt.n)
		if got != tt.want {
			t.Errorf("nextPrime(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if !isPrime(got) {
			t.Errorf("nextPrime(%d) = %d, which is not prime", tt.n, got)
		}
	}
}
