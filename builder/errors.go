// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: n=3 < min=4: %w").
//   • Constructors never panic; option constructors (WithX) may.
//
// Priority when several checks fail:
//   • ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//     and ErrConstructFailed only after all retries are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree,
// attachment count) is outside the constructor's domain.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// random source (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor exhausted its retries, or
// that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
