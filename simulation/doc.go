// SPDX-License-Identifier: MIT

// Package simulation runs the death–birth Markov chain of producers (trait 1)
// and non-producers (trait 0) on a graph.
//
// One update: a uniformly random individual dies; its neighbours compete
// for the empty site with fitness exp(δ·(payoff − max payoff)); the winner's
// offspring inherits the parent's trait, flipped with probability μ/2.
//
// Rule is the pure transition (state and random source passed explicitly).
// Population wraps a Rule with an owned state and O(1) frequency tracking.
// Run sweeps mutation rates in parallel; every task owns a math/rand source
// seeded seed XOR index, so results never depend on scheduling.
package simulation
