// leastsquares.go: least-squares re-estimation of tracked top-N counts
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package minsketch

import "sort"

// LeastSquaresTopNSketch re-estimates every tracked item's count by solving
// a least-squares system over the whole table instead of reading off a
// single row-minimum or row-median: every tracked item contributes a 0/1
// column (which cells its hashes touch) plus one shared "noise" column,
// and the system is solved for the count vector that best explains the
// observed table under that model. No third-party linear algebra library
// in the reference pack is imported directly by any example repo (gonum
// only ever appears as someone else's indirect dependency), so the solve
// itself is a small hand-rolled normal-equations/Gaussian-elimination pair -
// justified in the design notes as one of the places this package reaches
// for the standard library where the examples offered no grounding.
type LeastSquaresTopNSketch[K comparable] struct {
	*TopNCountMinSketch[K]
}

// NewLeastSquaresTopNSketch builds a LeastSquaresTopNSketch from cfg.
func NewLeastSquaresTopNSketch[K comparable](cfg Config) (*LeastSquaresTopNSketch[K], error) {
	base, err := NewTopNCountMinSketch[K](cfg)
	if err != nil {
		return nil, err
	}
	return &LeastSquaresTopNSketch[K]{TopNCountMinSketch: base}, nil
}

// MostCommon solves the least-squares system over every currently tracked
// item and returns the top k by re-estimated count.
func (s *LeastSquaresTopNSketch[K]) MostCommon(k int) []ItemCount[K] {
	candidates := s.topN.NLargest(s.topN.Len())
	L := len(candidates)
	if L == 0 {
		return nil
	}

	b := s.table.ToVector()
	rows := len(b)
	cols := L + 1 // one column per tracked item, plus the shared noise column

	a := make([][]float64, rows)
	for r := range a {
		a[r] = make([]float64, cols)
		a[r][L] = 1 // noise column touches every cell
	}

	width := s.table.Width()
	for l, entry := range candidates {
		for row, col := range s.hashing.Hash(entry.item) {
			a[uint64(row)*width+col][l] = 1
		}
	}

	x, ok := solveLeastSquares(a, b)
	if !ok {
		// Degenerate system (e.g. a single shared noise column with no
		// distinguishing rows): fall back to the tracker's own ranking.
		out := make([]ItemCount[K], L)
		for i, e := range candidates {
			out[i] = ItemCount[K]{Item: e.item, Count: e.count}
		}
		if k > L {
			k = L
		}
		return out[:k]
	}

	out := make([]ItemCount[K], L)
	for i, e := range candidates {
		count := x[i]
		if count < 0 {
			count = 0
		}
		out[i] = ItemCount[K]{Item: e.item, Count: uint64(count + 0.5)}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if k > L {
		k = L
	}
	if k < 0 {
		k = 0
	}
	return out[:k]
}

// solveLeastSquares solves the overdetermined system a*x ≈ b via the
// normal equations (a^T a) x = a^T b, then Gaussian elimination with
// partial pivoting on the resulting square system. Returns ok=false if the
// normal matrix is singular to within floating-point tolerance.
func solveLeastSquares(a [][]float64, b []uint64) ([]float64, bool) {
	rows := len(a)
	if rows == 0 {
		return nil, false
	}
	n := len(a[0])

	ata := make([][]float64, n)
	atb := make([]float64, n)
	for i := range ata {
		ata[i] = make([]float64, n)
	}

	for r := 0; r < rows; r++ {
		row := a[r]
		br := float64(b[r])
		for i := 0; i < n; i++ {
			if row[i] == 0 {
				continue
			}
			atb[i] += row[i] * br
			for j := 0; j < n; j++ {
				if row[j] != 0 {
					ata[i][j] += row[i] * row[j]
				}
			}
		}
	}

	return gaussianSolve(ata, atb)
}

// gaussianSolve solves m*x = v in place via Gaussian elimination with
// partial pivoting. m is modified; v is modified.
func gaussianSolve(m [][]float64, v []float64) ([]float64, bool) {
	n := len(v)
	const epsilon = 1e-9

	for col := 0; col < n; col++ {
		pivot := col
		best := m[col][col]
		if best < 0 {
			best = -best
		}
		for r := col + 1; r < n; r++ {
			candidate := m[r][col]
			if candidate < 0 {
				candidate = -candidate
			}
			if candidate > best {
				best = candidate
				pivot = r
			}
		}
		if best < epsilon {
			return nil, false
		}
		if pivot != col {
			m[col], m[pivot] = m[pivot], m[col]
			v[col], v[pivot] = v[pivot], v[col]
		}

		pivotVal := m[col][col]
		for r := col + 1; r < n; r++ {
			factor := m[r][col] / pivotVal
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m[r][c] -= factor * m[col][c]
			}
			v[r] -= factor * v[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := v[r]
		for c := r + 1; c < n; c++ {
			sum -= m[r][c] * x[c]
		}
		x[r] = sum / m[r][r]
	}
	return x, true
}
