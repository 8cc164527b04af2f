// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • Simple d-regular graph by incremental stub pairing: shuffle the open
//     stubs, keep every pair that forms a new non-loop edge, return the
//     rest to the pool, and repeat. A pool with no admissible pair left
//     forces a restart from scratch.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Edges are inserted sorted by (min,max) endpoint index, so the edge IDs
//     of equal samples are equal.
//
// Complexity:
//   • Per attempt ~O(n·d) expected; attempts are bounded by maxRegularAttempts.

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
	maxRegularAttempts  = 100
)

// RandomRegular returns a Constructor that builds an undirected d-regular
// simple graph. Regular graphs have uniform reproductive values, which makes
// them the baseline against which irregular structures are compared.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids, err := addIndexedVertices(g, methodRandomRegular, n, cfg.idFn)
		if err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxRegularAttempts; attempt++ {
			edges, ok := pairStubs(n, d, cfg.rng)
			if !ok {
				continue
			}
			for _, e := range edges {
				if err = addEdge(g, methodRandomRegular, ids[e[0]], ids[e[1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxRegularAttempts, ErrConstructFailed)
	}
}

// pairStubs runs one pairing attempt and reports whether it completed.
// The returned edges are sorted with e[0] < e[1].
func pairStubs(n, d int, rng *rand.Rand) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}
	seen := make(map[[2]int]struct{}, n*d/2)

	for len(stubs) > 0 {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
		open := make(map[int]int)
		for k := 0; k < len(stubs); k += 2 {
			u, v := stubs[k], stubs[k+1]
			if u > v {
				u, v = v, u
			}
			if _, dup := seen[[2]int{u, v}]; u != v && !dup {
				seen[[2]int{u, v}] = struct{}{}
				continue
			}
			open[u]++
			open[v]++
		}
		if !canPair(open, seen) {
			return nil, false
		}
		stubs = stubs[:0]
		for _, u := range sortedKeys(open) {
			for k := 0; k < open[u]; k++ {
				stubs = append(stubs, u)
			}
		}
	}

	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}
		return edges[a][1] < edges[b][1]
	})

	return edges, true
}

// canPair reports whether some two distinct open vertices are still
// unconnected. An empty pool is trivially complete.
func canPair(open map[int]int, seen map[[2]int]struct{}) bool {
	if len(open) == 0 {
		return true
	}
	keys := sortedKeys(open)
	for a := 0; a < len(keys); a++ {
		for b := a + 1; b < len(keys); b++ {
			if _, dup := seen[[2]int{keys[a], keys[b]}]; !dup {
				return true
			}
		}
	}

	return false
}

// sortedKeys fixes map iteration order so a seed always replays the same shuffle input.
func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
