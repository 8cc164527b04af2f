// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Definition:
//   • Wₙ = hub + Cₙ₋₁: index 0 is the hub, indices 1..n-1 form the rim.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Emits rim edges i—i+1 (closing n-1—1) first, then spokes 0—i,
//     each in increasing i.
//
// Complexity:
//   • Time: O(n) vertices + O(2(n-1)) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodWheel, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err = addEdge(g, methodWheel, ids[i], ids[next]); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodWheel, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
