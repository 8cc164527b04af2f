// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side takes indices 0..n1-1, right side n1..n1+n2-1; IDs via cfg.idFn.
//   • Emits all cross edges in (left asc, right asc) order.
//
// Complexity:
//   • Time: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodCompleteBipartite, n1+n2, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err = addEdge(g, methodCompleteBipartite, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
