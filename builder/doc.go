// SPDX-License-Identifier: MIT

// Package builder constructs the population structures used in experiments:
// deterministic families (Cycle, Path, Star, Wheel, Complete,
// CompleteBipartite, Grid), stochastic families (RandomSparse,
// RandomRegular, BarabasiAlbert) and the Karate club fixture.
//
// Every factory returns a Constructor; BuildGraph creates a core.Graph and
// applies constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.BarabasiAlbert(50, 2))
//
// Vertices are added by index through an IDFn (decimal by default), so
// structure.FromGraph recovers the construction order. Stochastic
// constructors need a random source (WithSeed or WithRand) and are
// reproducible for a fixed seed.
//
// Constructors validate parameters and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the method name; options panic on
// meaningless values.
package builder
