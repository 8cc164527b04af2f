// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal lattice with 4-neighbourhood, no wrap-around.
//   • Cell (r,c) takes index r*cols+c; IDs come from cfg.idFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addIndexedVertices(g, methodGrid, rows*cols, cfg.idFn)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addEdge(g, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
