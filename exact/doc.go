// SPDX-License-Identifier: MIT

// Package exact computes the first-order effect of weak selection on the
// long-run producer frequency of a graph-structured population under
// death–birth updating.
//
// The pipeline for one mutation rate μ is:
//
//	NewWalk                  W, A = W/deg, E = Aᵀ/N, D
//	(*Walk).LocationWeights  reproductive values v
//	(*Walk).IdentityByState  identity-by-state probabilities φ
//	(*Walk).StructureCoefficients  K1, K2
//	FrequencyDerivative      scalar effect for an additive or proportional good
//
// Run and Sweep evaluate many rates in parallel and keep results aligned
// with the input order. The Walk is built once per sweep and shared
// read-only between workers.
//
// Solvers:
//   - Direct: LU with partial pivoting on the pair system reduced by the
//     symmetry φ[i][j] = φ[j][i] (N(N−1)/2 unknowns).
//   - LeastSquares: LSQR on the full sparse N²×N² system; memory stays
//     O(N²·d̄).
//
// Errors are package sentinels (ErrMutationRate, ErrSingular, …) wrapped
// with the operation name; match them with errors.Is.
package exact
