// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"

	"github.com/katalvlaran/sigma/matrix"
)

const methodLocationWeights = "LocationWeights"

// LocationWeights returns the mutation-weighted reproductive values v.
//
// Implementation:
//   - Stage 1: Build M = I − (1−μ)·B with B[i][k] = E[k][i]/D[k].
//   - Stage 2: Solve Mᵀx = (μ/N)·𝟙 by LU with partial pivoting.
//   - Stage 3: Return v[k] = x[k]/D[k].
//
// The result satisfies N·(v⊙D)·(I − (1−μ)A) = μ·𝟙.
//
// Errors:
//   - ErrMutationRate for μ outside [0, 1].
//   - ErrSingular for μ = 0 or a numerically singular M.
//
// Complexity: O(N³).
func (w *Walk) LocationWeights(mu float64) ([]float64, error) {
	if err := checkRate(methodLocationWeights, mu); err != nil {
		return nil, err
	}
	n := w.n

	m, _ := matrix.NewIdentity(n)
	for i := 0; i < n; i++ {
		row, _ := m.Row(i)
		for _, k := range w.s.Neighbors(i) {
			ek, _ := w.E.At(k, i)
			row[k] -= (1 - mu) * ek / w.D[k]
		}
	}

	f, err := matrix.Factorize(m)
	if err != nil {
		return nil, singularf(methodLocationWeights, mu, err)
	}
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = mu / float64(n)
	}
	x, err := f.SolveTranspose(rhs)
	if err != nil {
		return nil, fmt.Errorf("%s: mu=%g: %w", methodLocationWeights, mu, err)
	}
	for k := range x {
		x[k] /= w.D[k]
	}

	return x, nil
}
