// SPDX-License-Identifier: MIT

package exact

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sigma/matrix"
)

// Sentinel errors returned by the exact engine.
var (
	// ErrMutationRate indicates μ outside [0, 1] or NaN.
	ErrMutationRate = errors.New("exact: mutation rate must lie in [0, 1]")

	// ErrUnknownSolver indicates a solver outside the closed enumeration.
	ErrUnknownSolver = errors.New("exact: unknown solver (want direct|spsolve or least-squares|lsqr)")

	// ErrNotFinite indicates a NaN or ±Inf benefit or cost.
	ErrNotFinite = errors.New("exact: benefit and cost must be finite")

	// ErrShape indicates reproductive values or identity-by-state
	// probabilities whose size does not match the population.
	ErrShape = errors.New("exact: input shape does not match population size")

	// ErrSingular indicates a numerically singular system. It matches
	// matrix.ErrSingular under errors.Is. μ = 0 always yields it.
	ErrSingular = fmt.Errorf("exact: %w", matrix.ErrSingular)
)

// singularf returns an error that matches both ErrSingular and cause.
func singularf(method string, mu float64, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: mu=%g: %w", method, mu, ErrSingular)
	}

	return fmt.Errorf("%s: mu=%g: %w: %w", method, mu, ErrSingular, cause)
}
