// config_test.go: unit tests for Config sizing and validation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
	if cfg.Depth <= 0 {
		t.Errorf("Depth = %d, want > 0", cfg.Depth)
	}
	if cfg.Width == 0 {
		t.Errorf("Width = 0, want > 0")
	}
	if cfg.N != DefaultN {
		t.Errorf("N = %d, want %d", cfg.N, DefaultN)
	}
}

func TestValidateRejectsBadDelta(t *testing.T) {
	tests := []float64{-1, 0, 1.5}
	for _, delta := range tests {
		cfg := DefaultConfig()
		cfg.Delta = delta
		if err := cfg.Validate(); !IsConfigError(err) {
			t.Errorf("Delta=%v: Validate() = %v, want a config error", delta, err)
		}
	}
}

func TestValidateRejectsBadEpsilon(t *testing.T) {
	tests := []float64{-1, 0, 2}
	for _, epsilon := range tests {
		cfg := DefaultConfig()
		cfg.Epsilon = epsilon
		if err := cfg.Validate(); !IsConfigError(err) {
			t.Errorf("Epsilon=%v: Validate() = %v, want a config error", epsilon, err)
		}
	}
}

func TestValidateRejectsBadCounterBits(t *testing.T) {
	tests := []int{1, 7, 15, 33, 128}
	for _, bits := range tests {
		cfg := DefaultConfig()
		cfg.CounterBits = bits
		err := cfg.Validate()
		if !IsConfigError(err) {
			t.Errorf("CounterBits=%d: Validate() = %v, want a config error", bits, err)
		}
	}
}

func TestValidateDerivesDepthAndWidth(t *testing.T) {
	cfg := Config{Delta: 0.01, Epsilon: 0.01}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cfg.Depth <= 0 || cfg.Width == 0 {
		t.Errorf("Depth=%d Width=%d, want both derived > 0", cfg.Depth, cfg.Width)
	}
}

func TestValidateHonorsExplicitDepthWidth(t *testing.T) {
	cfg := Config{Delta: 0.01, Epsilon: 0.01, Depth: 3, Width: 101}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want 3 (explicit)", cfg.Depth)
	}
	if cfg.Width != 101 {
		t.Errorf("Width = %d, want 101 (explicit)", cfg.Width)
	}
}

func TestValidateForcesPrimeWidthForDoubleHashing(t *testing.T) {
	cfg := Config{Delta: 0.01, Epsilon: 0.01, Width: 100, HashStrategy: HashDouble}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if !isPrime(cfg.Width) {
		t.Errorf("Width = %d, want a prime for double hashing", cfg.Width)
	}
}

func TestValidateDefaultsLossyGammaFromEpsilon(t *testing.T) {
	cfg := Config{Delta: 0.01, Epsilon: 0.02, LossyStrategy: LossyLCU1}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cfg.Gamma != 0.02 {
		t.Errorf("Gamma = %v, want 0.02 (defaulted from Epsilon)", cfg.Gamma)
	}
}

func TestValidateDefaultsLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logger = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if cfg.Logger == nil {
		t.Error("Logger still nil after Validate()")
	}
}
