// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"

	"github.com/katalvlaran/sigma/matrix"
)

const methodStructureCoefficients = "StructureCoefficients"

// Coefficients bundles the structure coefficients with the matrices the
// frequency derivative needs.
type Coefficients struct {
	Mu float64

	K1 *matrix.Dense
	K2 *matrix.Dense
	W  *matrix.Dense
	A  *matrix.Dense
}

// StructureCoefficients aggregates K1 and K2 from the reproductive values v
// and identity-by-state probabilities phi at mutation rate mu.
//
// For each node j the marginal fecundity effect is
// m_j[a][b] = (A[a][j]/N)·(δ_bj − A[a][b]), and with u = v·m_j:
//
//	t1[b]    = Σ_a v[a]·m_j[a][b]·φ[a][b]
//	t2[b][c] = Σ_a v[a]·m_j[a][b]·φ[a][c]
//	t3[b]    = u[b]·φ[j][b]
//	t4[b][c] = u[b]·φ[j][c]
//	t5       = Σ_b u[b]/N
//	K1 += (−(t1+t2) + (1−μ)(t3+t4) + t5)/(2μ)
//	K2 += (−(t1−t2) + (1−μ)(t3−t4))/(2μ)
//
// where column vectors t1, t3 broadcast across each row.
//
// Implementation:
//   - m_j is never materialized. v[a]·A[a][j] vanishes unless a is a
//     neighbour of j, and A[a][b] vanishes unless b is a neighbour of a, so
//     only rows b ∈ {j} ∪ N(N(j)) receive contributions.
//   - t5 is spread over every entry once at the end.
//
// Complexity: O(N·Σ_a deg(a)²) time, O(N²) space.
func (w *Walk) StructureCoefficients(mu float64, v []float64, phi *matrix.Dense) (*Coefficients, error) {
	if err := checkRate(methodStructureCoefficients, mu); err != nil {
		return nil, err
	}
	n := w.n
	if len(v) != n || phi == nil || phi.Rows() != n || phi.Cols() != n {
		return nil, fmt.Errorf("%s: n=%d: %w", methodStructureCoefficients, n, ErrShape)
	}

	k1, _ := matrix.NewDense(n, n)
	k2, _ := matrix.NewDense(n, n)
	half := 1 / (2 * mu)
	keep := 1 - mu
	invN := 1 / float64(n)

	t1 := make([]float64, n)
	u := make([]float64, n)
	t2 := make([]float64, n*n)
	stamp := make([]int, n)
	touched := make([]int, 0, n)
	var t5Total float64

	touch := func(b, j int) {
		if stamp[b] != j+1 {
			stamp[b] = j + 1
			touched = append(touched, b)
		}
	}

	for j := 0; j < n; j++ {
		touched = touched[:0]
		touch(j, j)
		var total float64
		t2j := t2[j*n : (j+1)*n]

		for _, a := range w.s.Neighbors(j) {
			pa := w.step(a)
			alpha := v[a] * pa * invN
			phiA, _ := phi.Row(a)

			// δ_bj part
			total += alpha
			t1[j] += alpha * phiA[j]
			for c, p := range phiA {
				t2j[c] += alpha * p
			}

			// −A[a][b] part
			for _, b := range w.s.Neighbors(a) {
				touch(b, j)
				f := alpha * pa
				u[b] -= f
				t1[b] -= f * phiA[b]
				t2b := t2[b*n : (b+1)*n]
				for c, p := range phiA {
					t2b[c] -= f * p
				}
			}
		}
		u[j] += total

		phiJ, _ := phi.Row(j)
		var t5 float64
		for _, b := range touched {
			t5 += u[b]
			t3 := u[b] * phiJ[b]
			r1, _ := k1.Row(b)
			r2, _ := k2.Row(b)
			t2b := t2[b*n : (b+1)*n]
			for c := 0; c < n; c++ {
				t4 := u[b] * phiJ[c]
				r1[c] += half * (-(t1[b] + t2b[c]) + keep*(t3+t4))
				r2[c] += half * (-(t1[b] - t2b[c]) + keep*(t3-t4))
				t2b[c] = 0
			}
			t1[b], u[b] = 0, 0
		}
		t5Total += half * t5 * invN
	}

	if t5Total != 0 {
		for b := 0; b < n; b++ {
			r1, _ := k1.Row(b)
			for c := range r1 {
				r1[c] += t5Total
			}
		}
	}

	return &Coefficients{Mu: mu, K1: k1, K2: k2, W: w.W, A: w.A}, nil
}
