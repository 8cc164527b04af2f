// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// For n == 1 it returns []float64{lo}.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("Linspace(%g, %g, %d): %w", lo, hi, n, ErrInvalidGrid)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out, nil
}

// ExactRates is the grid of mutation rates for the exact sweep:
// n points from 1/n to 1. μ = 0 is excluded because the stationary
// identity-by-state system is singular there.
func ExactRates(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("ExactRates(%d): %w", n, ErrInvalidGrid)
	}

	return Linspace(1/float64(n), 1, n)
}

// SimulationRates is the grid of mutation rates for the simulation sweep:
// n interior points from 1/(n+1) to 1 − 1/(n+1).
func SimulationRates(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("SimulationRates(%d): %w", n, ErrInvalidGrid)
	}
	h := 1 / float64(n+1)

	return Linspace(h, 1-h, n)
}

// Rescale maps simulated mean frequencies onto the scale of the exact
// first-order effect: (x − ½)/δ. δ must be positive.
func Rescale(sim []float64, delta float64) ([]float64, error) {
	if !(delta > 0) || math.IsInf(delta, 0) {
		return nil, fmt.Errorf("Rescale(delta=%g): %w", delta, ErrInvalidGrid)
	}
	out := make([]float64, len(sim))
	for i, x := range sim {
		out[i] = (x - 0.5) / delta
	}

	return out, nil
}
