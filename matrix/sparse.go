// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row storage.
//
// Purpose:
//   - Hold large, mostly-zero systems (pair equations over N² unknowns)
//     in O(nnz) memory.
//   - Provide the two products an iterative solver needs: A*x and Aᵀ*y.

package matrix

import (
	"math"
	"sort"
)

// Triplets accumulates (row, col, value) entries before compression.
// Duplicate coordinates are summed by Compress.
type Triplets struct {
	rows, cols int
	i, j       []int
	v          []float64
}

// NewTriplets returns an empty accumulator for a rows×cols matrix.
func NewTriplets(rows, cols int) (*Triplets, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opCSR, ErrInvalidDimensions)
	}

	return &Triplets{rows: rows, cols: cols}, nil
}

// Add appends one entry. Zero values are skipped.
func (t *Triplets) Add(row, col int, v float64) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return matrixErrorf(opCSR, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return matrixErrorf(opCSR, ErrNaNInf)
	}
	if v == 0 {
		return nil
	}
	t.i = append(t.i, row)
	t.j = append(t.j, col)
	t.v = append(t.v, v)

	return nil
}

// Len returns the number of stored (uncompressed) entries.
func (t *Triplets) Len() int { return len(t.v) }

// CSR is an immutable compressed sparse row matrix.
//   - indptr has rows+1 entries; row i occupies [indptr[i], indptr[i+1]).
//   - indices are strictly increasing within a row.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	values     []float64
}

// Compress converts the accumulated triplets to CSR.
//
// Implementation:
//   - Stage 1: Count entries per row and prefix-sum into indptr.
//   - Stage 2: Scatter entries into their row slots.
//   - Stage 3: Sort each row by column and sum duplicates in place.
//
// Complexity:
//   - Time O(nnz log(maxRowNNZ)), Space O(nnz + rows).
func (t *Triplets) Compress() *CSR {
	counts := make([]int, t.rows+1)
	for _, r := range t.i {
		counts[r+1]++
	}
	for r := 0; r < t.rows; r++ {
		counts[r+1] += counts[r]
	}

	next := make([]int, t.rows)
	copy(next, counts[:t.rows])
	idx := make([]int, len(t.v))
	val := make([]float64, len(t.v))
	for k, r := range t.i {
		p := next[r]
		idx[p], val[p] = t.j[k], t.v[k]
		next[r]++
	}

	m := &CSR{rows: t.rows, cols: t.cols, indptr: make([]int, t.rows+1)}
	m.indices = idx[:0]
	m.values = val[:0]
	for r := 0; r < t.rows; r++ {
		lo, hi := counts[r], counts[r+1]
		seg := rowSegment{idx: idx[lo:hi], val: val[lo:hi]}
		sort.Sort(seg)
		last := -1
		for k := range seg.idx {
			c, v := seg.idx[k], seg.val[k]
			if c == last {
				m.values[len(m.values)-1] += v
				continue
			}
			m.indices = append(m.indices, c)
			m.values = append(m.values, v)
			last = c
		}
		m.indptr[r+1] = len(m.values)
	}

	return m
}

// rowSegment sorts the column indices of one row together with their values.
type rowSegment struct {
	idx []int
	val []float64
}

func (s rowSegment) Len() int           { return len(s.idx) }
func (s rowSegment) Less(a, b int) bool { return s.idx[a] < s.idx[b] }
func (s rowSegment) Swap(a, b int) {
	s.idx[a], s.idx[b] = s.idx[b], s.idx[a]
	s.val[a], s.val[b] = s.val[b], s.val[a]
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored non-zeros.
func (m *CSR) NNZ() int { return len(m.values) }

// At returns the entry at (row, col); missing entries are zero.
// Complexity: O(log(rowNNZ)).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, matrixErrorf(opCSR, ErrOutOfRange)
	}
	lo, hi := m.indptr[row], m.indptr[row+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], col)
	if k < hi && m.indices[k] == col {
		return m.values[k], nil
	}

	return 0, nil
}

// MulVec returns A*x.
// Complexity: O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, matrixErrorf(opCSR, ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		var s float64
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			s += m.values[k] * x[m.indices[k]]
		}
		y[r] = s
	}

	return y, nil
}

// MulVecTrans returns Aᵀ*y.
// Complexity: O(nnz).
func (m *CSR) MulVecTrans(y []float64) ([]float64, error) {
	if len(y) != m.rows {
		return nil, matrixErrorf(opCSR, ErrDimensionMismatch)
	}
	x := make([]float64, m.cols)
	for r := 0; r < m.rows; r++ {
		yr := y[r]
		if yr == 0 {
			continue
		}
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			x[m.indices[k]] += m.values[k] * yr
		}
	}

	return x, nil
}

// FrobeniusNorm returns sqrt(Σ a²).
func (m *CSR) FrobeniusNorm() float64 {
	var s float64
	for _, v := range m.values {
		s += v * v
	}

	return math.Sqrt(s)
}

// ToDense expands the matrix. Intended for direct solves of moderate size.
// Complexity: O(rows*cols).
func (m *CSR) ToDense() *Dense {
	d := &Dense{r: m.rows, c: m.cols, data: make([]float64, m.rows*m.cols)}
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			d.data[r*m.cols+m.indices[k]] = m.values[k]
		}
	}

	return d
}
