// Package matrix provides the numerical kernels behind the exact
// calculation: a row-major Dense matrix with safe accessors and
// deterministic BLAS-like operations, LU factorization with partial pivoting
// for direct solves, a compressed sparse row (CSR) matrix assembled from
// triplets, and the LSQR iterative least-squares solver.
//
// Dense is meant for N×N quantities derived from a population graph
// (adjacency, transition matrix, identity-by-state probabilities, structure
// coefficients). CSR is meant for the N²×N² pair systems whose rows carry
// only O(deg) non-zeros.
//
// All public functions validate their inputs and return sentinel errors
// (see errors.go); nothing panics on user-triggered conditions.
package matrix
