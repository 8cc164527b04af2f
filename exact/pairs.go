// SPDX-License-Identifier: MIT

package exact

import "github.com/katalvlaran/sigma/matrix"

// pairIndex maps the ordered pair (i, j) to its unknown in the full pair
// system: column-major, so φ[i][j] lives at i + j·N. Assembly and reshaping
// both go through here.
func pairIndex(i, j, n int) int { return i + j*n }

// upperIndex maps an unordered pair {i, j}, i != j, to its unknown in the
// symmetry-reduced system of N(N−1)/2 off-diagonal pairs. Pairs are
// numbered column by column over the strict upper triangle.
func upperIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return j*(j-1)/2 + i
}

// pairSystem assembles the full N²×N² identity-by-state system
//
//	φ[i][j] − (1−μ)/2·(Σ_k A[i][k]·φ[k][j] + Σ_k A[j][k]·φ[i][k]) = μ/2,  i ≠ j
//	φ[i][i] = 1
//
// as CSR with its right-hand side.
//
// Complexity: O(N²·d̄) non-zeros, where d̄ is the mean degree.
func (w *Walk) pairSystem(mu float64) (*matrix.CSR, []float64) {
	n := w.n
	size := n * n
	half := (1 - mu) / 2
	tr, _ := matrix.NewTriplets(size, size)
	rhs := make([]float64, size)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			row := pairIndex(i, j, n)
			_ = tr.Add(row, row, 1)
			if i == j {
				rhs[row] = 1
				continue
			}
			rhs[row] = mu / 2
			pi, pj := w.step(i), w.step(j)
			for _, k := range w.s.Neighbors(i) {
				_ = tr.Add(row, pairIndex(k, j, n), -half*pi)
			}
			for _, k := range w.s.Neighbors(j) {
				_ = tr.Add(row, pairIndex(i, k, n), -half*pj)
			}
		}
	}

	return tr.Compress(), rhs
}

// reducedSystem assembles the same equations over the unordered
// off-diagonal pairs only, using φ[i][j] = φ[j][i] and φ[i][i] = 1.
// Terms that land on the diagonal move to the right-hand side.
//
// Complexity: O(N⁴/4) dense storage, O(N²·d̄) fill.
func (w *Walk) reducedSystem(mu float64) (*matrix.Dense, []float64) {
	n := w.n
	size := n * (n - 1) / 2
	half := (1 - mu) / 2
	m, _ := matrix.NewDense(size, size)
	rhs := make([]float64, size)

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			row := upperIndex(i, j)
			r, _ := m.Row(row)
			r[row] += 1
			rhs[row] = mu / 2
			pi, pj := w.step(i), w.step(j)
			for _, k := range w.s.Neighbors(i) {
				if k == j {
					rhs[row] += half * pi
					continue
				}
				r[upperIndex(k, j)] -= half * pi
			}
			for _, k := range w.s.Neighbors(j) {
				if k == i {
					rhs[row] += half * pj
					continue
				}
				r[upperIndex(i, k)] -= half * pj
			}
		}
	}

	return m, rhs
}
