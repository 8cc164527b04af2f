// SPDX-License-Identifier: MIT

package exact

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/matrix"
	"github.com/katalvlaran/sigma/structure"
	"github.com/katalvlaran/sigma/sweep"
)

const (
	methodRun       = "Run"
	methodSweep     = "Sweep"
	methodCalculate = "Calculate"
)

// Result holds the first-order selection effects of a sweep, index-aligned
// with Rates.
type Result struct {
	Rates        []float64
	Additive     []float64
	Proportional []float64
}

// Effects returns the series for good g.
func (r *Result) Effects(g goods.Good) []float64 {
	if g == goods.Proportional {
		return r.Proportional
	}

	return r.Additive
}

type config struct {
	solver  Solver
	workers int
	logger  *log.Logger
	lsqr    matrix.LSQROptions
}

// Option configures Run and Sweep.
type Option func(*config)

// WithSolver selects the identity-by-state solver. Default: Direct.
// Panics on an unknown solver.
func WithSolver(s Solver) Option {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("exact: WithSolver: %v", err))
	}

	return func(c *config) { c.solver = s }
}

// WithWorkers bounds concurrent mutation rates. 0 means runtime.NumCPU().
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("exact: WithWorkers(%d): negative worker count", n))
	}

	return func(c *config) { c.workers = n }
}

// WithLogger routes per-rate debug lines to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLSQR sets the tolerances and iteration cap used by LeastSquares.
func WithLSQR(o matrix.LSQROptions) Option {
	return func(c *config) { c.lsqr = o }
}

func newConfig(opts ...Option) config {
	c := config{solver: Direct, logger: log.New(io.Discard)}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// Calculate runs the full exact pipeline for one mutation rate: random
// walk, reproductive values, identity by state and structure coefficients.
func Calculate(s *structure.Structure, mu float64, solver Solver) (*Coefficients, error) {
	w, err := NewWalk(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCalculate, err)
	}

	return w.calculate(mu, solver, matrix.LSQROptions{})
}

func (w *Walk) calculate(mu float64, solver Solver, lsqr matrix.LSQROptions) (*Coefficients, error) {
	v, err := w.LocationWeights(mu)
	if err != nil {
		return nil, err
	}
	phi, err := w.identityByState(mu, solver, lsqr)
	if err != nil {
		return nil, err
	}

	return w.StructureCoefficients(mu, v, phi)
}

// Sweep computes structure coefficients for every rate in parallel.
// Coefficients do not depend on b or c, so one sweep serves any number of
// benefit/cost evaluations.
//
// Implementation:
//   - Stage 1: Validate every rate before any work starts.
//   - Stage 2: Build the random walk once; it is shared read-only.
//   - Stage 3: sweep.Map over rates; out[i] belongs to rates[i].
//
// Errors: first failure wins and is returned as *sweep.TaskError.
func Sweep(ctx context.Context, s *structure.Structure, rates []float64, opts ...Option) ([]*Coefficients, error) {
	cfg := newConfig(opts...)
	for i, mu := range rates {
		if err := checkRate(methodSweep, mu); err != nil {
			return nil, &sweep.TaskError{Index: i, Err: err}
		}
	}
	w, err := NewWalk(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSweep, err)
	}

	return sweep.Map(ctx, len(rates), cfg.workers, func(_ context.Context, i int) (*Coefficients, error) {
		start := time.Now()
		k, err := w.calculate(rates[i], cfg.solver, cfg.lsqr)
		if err != nil {
			return nil, err
		}
		cfg.logger.Debug("structure coefficients", "mu", rates[i], "n", w.n,
			"solver", cfg.solver, "elapsed", time.Since(start).Round(time.Millisecond))

		return k, nil
	})
}

// Run evaluates the first-order selection effect for both goods at every
// mutation rate. Results are index-aligned with rates.
//
// Errors:
//   - ErrNotFinite for non-finite b or c.
//   - Anything Sweep returns.
func Run(ctx context.Context, s *structure.Structure, b, c float64, rates []float64, opts ...Option) (*Result, error) {
	if math.IsNaN(b) || math.IsInf(b, 0) || math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("%s: b=%g c=%g: %w", methodRun, b, c, ErrNotFinite)
	}
	ks, err := Sweep(ctx, s, rates, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	return Evaluate(ks, b, c)
}

// Evaluate turns swept coefficients into a Result for benefit b and cost c.
func Evaluate(ks []*Coefficients, b, c float64) (*Result, error) {
	res := &Result{
		Rates:        make([]float64, len(ks)),
		Additive:     make([]float64, len(ks)),
		Proportional: make([]float64, len(ks)),
	}
	for i, k := range ks {
		if k == nil {
			return nil, &sweep.TaskError{Index: i, Err: ErrShape}
		}
		res.Rates[i] = k.Mu
		ff, err := FrequencyDerivative(k, b, c, goods.Additive)
		if err != nil {
			return nil, &sweep.TaskError{Index: i, Err: err}
		}
		pp, err := FrequencyDerivative(k, b, c, goods.Proportional)
		if err != nil {
			return nil, &sweep.TaskError{Index: i, Err: err}
		}
		res.Additive[i], res.Proportional[i] = ff, pp
	}

	return res, nil
}
