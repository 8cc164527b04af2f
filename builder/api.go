// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

const methodBuildGraph = "BuildGraph"

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices via cfg.idFn in ascending index order.
//   - Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; no
// partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                 C_n, n ≥ 3.
// Path(n)                  P_n, n ≥ 2.
// Star(n)                  hub index 0 plus n-1 leaves, n ≥ 2.
// Wheel(n)                 hub index 0 plus rim C_{n-1}, n ≥ 4.
// Complete(n)              K_n, n ≥ 1.
// CompleteBipartite(a, b)  K_{a,b}; left indices 0..a-1, right a..a+b-1.
// Grid(rows, cols)         4-neighbourhood lattice, index r*cols+c.
// RandomSparse(n, p)       Erdős–Rényi G(n,p).
// RandomRegular(n, d)      uniform-ish d-regular simple graph.
// BarabasiAlbert(n, m)     preferential attachment with m edges per arrival.
// Karate()                 Zachary's karate club (34 members, 78 ties).
