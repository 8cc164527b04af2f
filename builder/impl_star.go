// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub; indices 1..n-1 are leaves. IDs come from cfg.idFn.
//   • Emits spokes 0—i for i=1..n-1 in increasing order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
// The hub's degree n-1 against the leaves' degree 1 makes it the most
// irregular connected graph on n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodStar, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
