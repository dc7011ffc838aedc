// factory.go: builds the table/hashing/update/lossy pieces a Config describes
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

func newTableFromConfig(cfg Config) SketchTable {
	switch cfg.TableBackend {
	case TableFixedWidth:
		return newFixedWidthTable(cfg.Depth, cfg.Width, cfg.CounterBits)
	case TableMatrix:
		return newMatrixTable(cfg.Depth, cfg.Width, cfg.CounterBits)
	case TableBitPacked:
		return newBitPackedTable(cfg.Depth, cfg.Width, cfg.CounterBits)
	default:
		return newDenseTable(cfg.Depth, cfg.Width)
	}
}

func newHashingStrategyFromConfig[K comparable](cfg Config, gen *UniversalHashFamily) (HashingStrategy[K], error) {
	switch cfg.HashStrategy {
	case HashDouble:
		return NewDoubleHashingStrategy[K](cfg.Depth, cfg.Width, gen)
	default:
		return NewNaiveHashingStrategy[K](cfg.Depth, cfg.Width, gen), nil
	}
}

func newUpdateStrategyFromConfig(cfg Config) UpdateStrategy {
	switch cfg.UpdateStrategy {
	case UpdateConservative:
		return NewConservativeUpdateStrategy()
	default:
		return NewNaiveUpdateStrategy()
	}
}

func newLossyStrategyFromConfig(cfg Config) *LossyStrategy {
	return NewLossyStrategy(cfg.LossyStrategy, cfg.Gamma)
}
