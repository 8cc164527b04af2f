// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_barabasi_albert.go — implementation of BarabasiAlbert(n, m) constructor.
//
// Model:
//   • Seed graph: star on indices 0..m (hub 0).
//   • Each arriving vertex s = m+1..n-1 attaches to m distinct earlier
//     vertices drawn with probability proportional to degree.
//
// Contract:
//   • 1 ≤ m < n (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each arrival's edges are inserted with targets in ascending index order.
//
// Complexity:
//   • Time: O(n·m) expected; Space: O(n·m) for the degree-weighted urn.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minAttachment        = 1
)

// BarabasiAlbert returns a Constructor for a preferential-attachment graph
// with n vertices, m edges per arriving vertex, and a heavy-tailed degree
// distribution. The result is always connected.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minAttachment || m >= n {
			return fmt.Errorf("%s: need 1 ≤ m < n, got n=%d m=%d: %w",
				methodBarabasiAlbert, n, m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}
		ids, err := addIndexedVertices(g, methodBarabasiAlbert, n, cfg.idFn)
		if err != nil {
			return err
		}

		// urn holds every vertex once per incident edge end.
		urn := make([]int, 0, 2*n*m)
		for i := 1; i <= m; i++ {
			if err = addEdge(g, methodBarabasiAlbert, ids[0], ids[i]); err != nil {
				return err
			}
			urn = append(urn, 0, i)
		}

		targets := make(map[int]struct{}, m)
		picked := make([]int, 0, m)
		for s := m + 1; s < n; s++ {
			clear(targets)
			for len(targets) < m {
				targets[urn[cfg.rng.Intn(len(urn))]] = struct{}{}
			}
			picked = picked[:0]
			for t := range targets {
				picked = append(picked, t)
			}
			sort.Ints(picked)
			for _, t := range picked {
				if err = addEdge(g, methodBarabasiAlbert, ids[s], ids[t]); err != nil {
					return err
				}
				urn = append(urn, s, t)
			}
		}

		return nil
	}
}
