// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sigma/matrix"
)

const methodIdentityByState = "IdentityByState"

// IdentityByState returns the N×N matrix φ of identity-by-state
// probabilities under neutral drift: φ[i][i] = 1 and, off the diagonal,
//
//	φ = μ/2·𝟙𝟙ᵀ + (1−μ)/2·(Aφ + (Aφ)ᵀ).
//
// Direct solves the symmetry-reduced system by LU with partial pivoting.
// LeastSquares runs LSQR with default tolerances on the full sparse system.
//
// Errors:
//   - ErrMutationRate, ErrUnknownSolver on invalid arguments.
//   - ErrSingular for μ = 0 or a singular system.
//   - matrix.ErrNotConverged if LSQR exhausts its iteration budget.
func (w *Walk) IdentityByState(mu float64, solver Solver) (*matrix.Dense, error) {
	return w.identityByState(mu, solver, matrix.LSQROptions{})
}

func (w *Walk) identityByState(mu float64, solver Solver, lsqr matrix.LSQROptions) (*matrix.Dense, error) {
	if err := solver.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodIdentityByState, err)
	}
	if err := checkRate(methodIdentityByState, mu); err != nil {
		return nil, err
	}
	switch solver {
	case Direct:
		return w.identityDirect(mu)
	default:
		return w.identityLSQR(mu, lsqr)
	}
}

func (w *Walk) identityDirect(mu float64) (*matrix.Dense, error) {
	m, rhs := w.reducedSystem(mu)
	x, err := matrix.Solve(m, rhs)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, singularf(methodIdentityByState, mu, err)
		}
		return nil, fmt.Errorf("%s: mu=%g: %w", methodIdentityByState, mu, err)
	}

	n := w.n
	phi, _ := matrix.NewIdentity(n)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			v := x[upperIndex(i, j)]
			_ = phi.Set(i, j, v)
			_ = phi.Set(j, i, v)
		}
	}

	return phi, nil
}

func (w *Walk) identityLSQR(mu float64, opts matrix.LSQROptions) (*matrix.Dense, error) {
	m, rhs := w.pairSystem(mu)
	res, err := matrix.LSQR(m, rhs, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: mu=%g: %w", methodIdentityByState, mu, err)
	}

	n := w.n
	phi, _ := matrix.NewDense(n, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if err := phi.Set(i, j, res.X[pairIndex(i, j, n)]); err != nil {
				return nil, fmt.Errorf("%s: mu=%g: %w", methodIdentityByState, mu, err)
			}
		}
	}

	return phi, nil
}
