// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices:
// element-wise addition and subtraction, products, transpose, scaling,
// reductions and matrix-vector products. All functions perform strict
// fail-fast validation and return fresh results; operands are never mutated.

package matrix

import "math"

// validateBinarySameShape checks that a and b are non-nil and equally shaped.
func validateBinarySameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b *Dense, sign float64, tag string) (*Dense, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns a + b.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a*b.
//
// Implementation:
//   - Stage 1: Validate a.Cols == b.Rows.
//   - Stage 2: i→k→j loop over flat slices, skipping zero a[i,k].
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Sparse rows of a are cheap.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		rowA := a.data[i*a.c : (i+1)*a.c]
		rowOut := out.data[i*b.c : (i+1)*b.c]
		for k, av := range rowA {
			if av == 0 {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j, bv := range rowB {
				rowOut[j] += av * bv
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] * b.data[k]
	}

	return out, nil
}

// MatVec returns m*x.
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var s float64
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			s += v * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// VecMat returns the row-vector product x*m.
// Complexity: O(r*c).
func VecMat(x []float64, m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.r {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.c)
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			y[j] += xi * v
		}
	}

	return y, nil
}

// Trace returns Σ m[i,i] of a square matrix.
// Complexity: O(n).
func Trace(m *Dense) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, matrixErrorf(opTrace, ErrNonSquare)
	}
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}

	return s, nil
}

// TraceMul returns tr(a*b) without materializing the product.
// Complexity: O(r*c).
func TraceMul(a, b *Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if a.c != b.r || a.r != b.c {
		return 0, matrixErrorf(opTrace, ErrDimensionMismatch)
	}
	var s float64
	for i := 0; i < a.r; i++ {
		for k, av := range a.data[i*a.c : (i+1)*a.c] {
			if av != 0 {
				s += av * b.data[k*b.c+i]
			}
		}
	}

	return s, nil
}

// Sum returns the sum of all entries.
func Sum(m *Dense) float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// HadamardSum returns Σ a⊙b (the Frobenius inner product).
// Complexity: O(r*c).
func HadamardSum(a, b *Dense) (float64, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opHadamard, err)
	}
	var s float64
	for k, v := range a.data {
		s += v * b.data[k]
	}

	return s, nil
}

// RowSums returns the vector of row sums.
func RowSums(m *Dense) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for _, v := range m.data[i*m.c : (i+1)*m.c] {
			out[i] += v
		}
	}

	return out
}

// ColSums returns the vector of column sums.
func ColSums(m *Dense) []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			out[j] += v
		}
	}

	return out
}

// AllClose reports whether |a-b| <= atol + rtol*|b| element-wise.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return false, err
	}
	for k, av := range a.data {
		bv := b.data[k]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
