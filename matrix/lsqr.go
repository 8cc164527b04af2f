// SPDX-License-Identifier: MIT

// Package matrix - LSQR iterative least-squares solver (Paige & Saunders, 1982).
//
// Purpose:
//   - Minimize ‖A*x − b‖₂ for a sparse A using only A*v and Aᵀ*u products.
//   - Serve as the memory-light alternative to a direct LU solve of the
//     pair systems, whose dense form grows as N⁴.

package matrix

import "math"

const (
	// DefaultLSQRTol is the default value of both ATol and BTol.
	DefaultLSQRTol = 1e-10

	// defaultLSQRIterFactor bounds iterations at factor*cols when MaxIter is zero.
	defaultLSQRIterFactor = 10
)

// LSQROptions configures LSQR. Zero fields take defaults.
//   - ATol: relative error tolerance on A (stopping on ‖Aᵀr‖).
//   - BTol: relative error tolerance on b (stopping on ‖r‖).
//   - MaxIter: iteration budget; 0 means 10*cols.
type LSQROptions struct {
	ATol    float64
	BTol    float64
	MaxIter int
}

// LSQRResult reports how the solve ended.
type LSQRResult struct {
	X          []float64
	Iterations int
	ResidNorm  float64 // estimate of ‖b − A*x‖
}

func (o LSQROptions) withDefaults(cols int) LSQROptions {
	if o.ATol <= 0 {
		o.ATol = DefaultLSQRTol
	}
	if o.BTol <= 0 {
		o.BTol = DefaultLSQRTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = defaultLSQRIterFactor * cols
	}

	return o
}

// LSQR solves min ‖A*x − b‖₂.
//
// Implementation:
//   - Stage 1: Golub-Kahan bidiagonalization start: β₁u₁ = b, α₁v₁ = Aᵀu₁.
//   - Stage 2: Each iteration extends the bidiagonalization by one step and
//     applies a plane rotation to update x along the search direction w.
//   - Stage 3: Stop when ‖r‖/‖b‖ <= BTol + ATol*‖A‖‖x‖/‖b‖ (compatible system)
//     or ‖Aᵀr‖/(‖A‖‖r‖) <= ATol (least-squares optimum).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf on invalid input.
//   - ErrNotConverged when MaxIter is exhausted; the partial result is still returned.
//
// Complexity:
//   - Time O(iter * nnz), Space O(rows + cols).
func LSQR(a *CSR, b []float64, opts LSQROptions) (LSQRResult, error) {
	if a == nil {
		return LSQRResult{}, matrixErrorf(opLSQR, ErrNilMatrix)
	}
	if len(b) != a.rows {
		return LSQRResult{}, matrixErrorf(opLSQR, ErrDimensionMismatch)
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return LSQRResult{}, matrixErrorf(opLSQR, ErrNaNInf)
		}
	}
	opts = opts.withDefaults(a.cols)

	x := make([]float64, a.cols)

	// Stage 1: initialization
	u := make([]float64, len(b))
	copy(u, b)
	beta := norm2(u)
	bnorm := beta
	if beta == 0 {
		return LSQRResult{X: x}, nil
	}
	scaleVec(u, 1/beta)

	v, _ := a.MulVecTrans(u)
	alpha := norm2(v)
	if alpha == 0 {
		// b is orthogonal to range(A); x = 0 is the least-squares solution.
		return LSQRResult{X: x, ResidNorm: bnorm}, nil
	}
	scaleVec(v, 1/alpha)

	w := make([]float64, len(v))
	copy(w, v)
	phibar, rhobar := beta, alpha
	anorm := a.FrobeniusNorm()

	// Stage 2: iterations
	for it := 1; it <= opts.MaxIter; it++ {
		av, _ := a.MulVec(v)
		for i := range u {
			u[i] = av[i] - alpha*u[i]
		}
		beta = norm2(u)
		if beta > 0 {
			scaleVec(u, 1/beta)
		}

		atu, _ := a.MulVecTrans(u)
		for i := range v {
			v[i] = atu[i] - beta*v[i]
		}
		alpha = norm2(v)
		if alpha > 0 {
			scaleVec(v, 1/alpha)
		}

		rho := math.Hypot(rhobar, beta)
		c, s := rhobar/rho, beta/rho
		theta := s * alpha
		rhobar = -c * alpha
		phi := c * phibar
		phibar = s * phibar

		t1, t2 := phi/rho, theta/rho
		for i := range x {
			x[i] += t1 * w[i]
			w[i] = v[i] - t2*w[i]
		}

		// Stage 3: stopping rules
		rnorm := phibar
		arnorm := alpha * math.Abs(c) * phibar
		xnorm := norm2(x)
		if rnorm/bnorm <= opts.BTol+opts.ATol*anorm*xnorm/bnorm ||
			rnorm == 0 || arnorm/(anorm*rnorm) <= opts.ATol {
			return LSQRResult{X: x, Iterations: it, ResidNorm: rnorm}, nil
		}
	}

	return LSQRResult{X: x, Iterations: opts.MaxIter, ResidNorm: phibar}, matrixErrorf(opLSQR, ErrNotConverged)
}

func norm2(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}

	return math.Sqrt(s)
}

func scaleVec(x []float64, alpha float64) {
	for i := range x {
		x[i] *= alpha
	}
}
