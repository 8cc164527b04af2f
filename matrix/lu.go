// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial (row) pivoting.
//
// Purpose:
//   - Factor a square A into P*A = L*U once and solve many right-hand sides.
//   - Detect (numerically) singular systems instead of producing Inf/NaN.

package matrix

import "math"

// pivotEpsilon scales the singularity test: a pivot is rejected when
// |pivot| <= pivotEpsilon * n * max|A|.
const pivotEpsilon = 1e-14

// LU holds a packed factorization P*A = L*U.
//   - lu stores U on and above the diagonal and the unit-lower L strictly below.
//   - piv[i] is the original row now placed at position i.
type LU struct {
	n   int
	lu  []float64
	piv []int
}

// Factorize computes the LU factorization of a square matrix with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate squareness and finiteness; record max|A| as the scale.
//   - Stage 2: For each column k choose the row with the largest |a[i,k]| (i>=k),
//     swap it into place, reject pivots below the relative tolerance.
//   - Stage 3: Eliminate below the pivot, storing multipliers in the lower triangle.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf on invalid input.
//   - ErrSingular when a pivot is zero relative to the matrix scale.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a *Dense) (*LU, error) {
	if a == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, matrixErrorf(opLU, ErrNonSquare)
	}
	n := a.r

	var scale float64
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opLU, ErrNaNInf)
		}
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	if scale == 0 {
		return nil, matrixErrorf(opLU, ErrSingular)
	}
	tol := pivotEpsilon * float64(n) * scale

	f := &LU{n: n, lu: make([]float64, len(a.data)), piv: make([]int, n)}
	copy(f.lu, a.data)
	for i := range f.piv {
		f.piv[i] = i
	}
	lu := f.lu

	for k := 0; k < n; k++ {
		// Stage 2: pivot search
		p, best := k, math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			rowK := lu[k*n : (k+1)*n]
			rowP := lu[p*n : (p+1)*n]
			for j := range rowK {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
		}

		// Stage 3: elimination
		pivot := lu[k*n+k]
		for i := k + 1; i < n; i++ {
			m := lu[i*n+k] / pivot
			lu[i*n+k] = m
			if m == 0 {
				continue
			}
			rowI := lu[i*n+k+1 : (i+1)*n]
			rowK := lu[k*n+k+1 : (k+1)*n]
			for j, uv := range rowK {
				rowI[j] -= m * uv
			}
		}
	}

	return f, nil
}

// Size returns the order n of the factored matrix.
func (f *LU) Size() int { return f.n }

// Solve returns x with A*x = b using the stored factorization.
//
// Implementation:
//   - Stage 1: Permute b by piv.
//   - Stage 2: Forward substitution with unit-lower L.
//   - Stage 3: Back substitution with U.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if len(b) != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	n, lu := f.n, f.lu

	x := make([]float64, n)
	for i, p := range f.piv {
		x[i] = b[p]
	}
	for i := 1; i < n; i++ {
		s := x[i]
		for j, l := range lu[i*n : i*n+i] {
			s -= l * x[j]
		}
		x[i] = s
	}
	for i := n - 1; i >= 0; i-- {
		s := x[i]
		for j := i + 1; j < n; j++ {
			s -= lu[i*n+j] * x[j]
		}
		x[i] = s / lu[i*n+i]
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSolve, ErrNaNInf)
		}
	}

	return x, nil
}

// SolveTranspose returns x with Aᵀ*x = b using the stored factorization.
// With P*A = L*U we have Aᵀ = Uᵀ*Lᵀ*P, so solve Uᵀz = b, Lᵀy = z, x = Pᵀy.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LU) SolveTranspose(b []float64) ([]float64, error) {
	if f == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if len(b) != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	n, lu := f.n, f.lu

	z := make([]float64, n)
	copy(z, b)
	for i := 0; i < n; i++ {
		s := z[i]
		for j := 0; j < i; j++ {
			s -= lu[j*n+i] * z[j]
		}
		z[i] = s / lu[i*n+i]
	}
	for i := n - 1; i >= 0; i-- {
		s := z[i]
		for j := i + 1; j < n; j++ {
			s -= lu[j*n+i] * z[j]
		}
		z[i] = s
	}

	x := make([]float64, n)
	for i, p := range f.piv {
		x[p] = z[i]
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSolve, ErrNaNInf)
		}
	}

	return x, nil
}

// Solve factors a and solves a*x = b in one call.
func Solve(a *Dense, b []float64) ([]float64, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
