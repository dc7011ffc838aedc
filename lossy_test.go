// lossy_test.go: unit tests for lossy-counting window strategies
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "testing"

func TestLossyNoneNeverDecrements(t *testing.T) {
	table := newDenseTable(1, 4)
	if _, err := table.Increment(0, 0, 5); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}

	strategy := NewLossyStrategy(LossyNone, 0.5)
	for i := 0; i < 100; i++ {
		strategy.Apply(table)
	}

	if got := table.Get(0, 0); got != 5 {
		t.Errorf("Get() = %d, want 5 (LossyNone never decays)", got)
	}
}

func TestLossyLCUAllDecrementsEveryWindow(t *testing.T) {
	table := newDenseTable(1, 4)
	if _, err := table.Increment(0, 0, 5); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}
	if _, err := table.Increment(0, 1, 1); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}

	strategy := NewLossyStrategy(LossyLCUAll, 1.0) // windowSize = 1: decays every update
	strategy.Apply(table)

	if got := table.Get(0, 0); got != 4 {
		t.Errorf("Get(0,0) = %d, want 4", got)
	}
	if got := table.Get(0, 1); got != 0 {
		t.Errorf("Get(0,1) = %d, want 0", got)
	}
}

func TestLossyLCU1OnlyDecrementsCountersAtOne(t *testing.T) {
	table := newDenseTable(1, 4)
	if _, err := table.Increment(0, 0, 5); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}
	if _, err := table.Increment(0, 1, 1); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}

	strategy := NewLossyStrategy(LossyLCU1, 1.0)
	strategy.Apply(table)

	if got := table.Get(0, 0); got != 5 {
		t.Errorf("Get(0,0) = %d, want 5 (above threshold, untouched)", got)
	}
	if got := table.Get(0, 1); got != 0 {
		t.Errorf("Get(0,1) = %d, want 0 (at threshold, decayed)", got)
	}
}

func TestLossyStrategyRespectsWindowSize(t *testing.T) {
	table := newDenseTable(1, 1)
	if _, err := table.Increment(0, 0, 10); err != nil {
		t.Fatalf("Increment() = %v, want nil", err)
	}

	strategy := NewLossyStrategy(LossyLCUAll, 0.25) // windowSize = 4
	for i := 0; i < 3; i++ {
		strategy.Apply(table)
	}
	if got := table.Get(0, 0); got != 10 {
		t.Errorf("Get() = %d, want 10 (window not yet elapsed)", got)
	}

	strategy.Apply(table) // 4th call completes the window
	if got := table.Get(0, 0); got != 9 {
		t.Errorf("Get() = %d, want 9 (one window elapsed)", got)
	}
}

func TestLossyStrategyFloorsAtZero(t *testing.T) {
	table := newDenseTable(1, 1)
	strategy := NewLossyStrategy(LossyLCUAll, 1.0)
	for i := 0; i < 5; i++ {
		strategy.Apply(table)
	}
	if got := table.Get(0, 0); got != 0 {
		t.Errorf("Get() = %d, want 0 (never goes negative)", got)
	}
}
