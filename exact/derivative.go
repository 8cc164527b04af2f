// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/matrix"
)

const methodFrequencyDerivative = "FrequencyDerivative"

// FrequencyDerivative returns the first-order effect of selection intensity
// on the mean producer frequency.
//
//   - Additive:     ½·(tr(A(K1−K2))·b − tr(Aᵀ(K1+K2))·c)
//   - Proportional: ½·((K1p−K2p)·b − (K1p+K2p)·c), Kp = Σ K⊙W
//
// Errors:
//   - ErrNotFinite for NaN/±Inf b or c.
//   - goods.ErrUnknownGood for an unknown good.
//   - ErrShape for incomplete coefficients.
//
// Complexity: O(N²).
func FrequencyDerivative(k *Coefficients, b, c float64, good goods.Good) (float64, error) {
	if math.IsNaN(b) || math.IsInf(b, 0) || math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, fmt.Errorf("%s: b=%g c=%g: %w", methodFrequencyDerivative, b, c, ErrNotFinite)
	}
	if err := good.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
	}
	if k == nil || k.K1 == nil || k.K2 == nil || k.W == nil || k.A == nil {
		return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, ErrShape)
	}

	diff, err := matrix.Sub(k.K1, k.K2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
	}
	sum, err := matrix.Add(k.K1, k.K2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
	}

	switch good {
	case goods.Additive:
		gain, err := matrix.TraceMul(k.A, diff)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
		}
		// tr(AᵀX) = Σ A⊙X
		loss, err := matrix.HadamardSum(k.A, sum)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
		}

		return 0.5 * (gain*b - loss*c), nil

	default:
		gain, err := matrix.HadamardSum(diff, k.W)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
		}
		loss, err := matrix.HadamardSum(sum, k.W)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodFrequencyDerivative, err)
		}

		return 0.5 * (gain*b - loss*c), nil
	}
}
