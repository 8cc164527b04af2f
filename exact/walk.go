// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sigma/matrix"
	"github.com/katalvlaran/sigma/structure"
)

const methodNewWalk = "NewWalk"

// Walk is the ancestral random walk on a population graph: the quantities
// shared by every mutation rate of a sweep. It is read-only after NewWalk
// and safe for concurrent use.
//
//   - W: adjacency matrix (0/1).
//   - A: transition matrix, A[i][j] = W[i][j]/deg(i).
//   - E: marginal transmission probabilities, E = Aᵀ/N.
//   - D: death probabilities, D[k] = Σ_i E[i][k] (1/N for every node).
type Walk struct {
	s *structure.Structure
	n int

	W *matrix.Dense
	A *matrix.Dense
	E *matrix.Dense
	D []float64
}

// NewWalk derives the random-walk quantities of s.
//
// Errors:
//   - structure.ErrEmpty for a nil structure.
//   - structure.ErrIsolatedNode if any node has degree 0.
//
// Complexity: O(N²).
func NewWalk(s *structure.Structure) (*Walk, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodNewWalk, structure.ErrEmpty)
	}
	if err := s.RequireNoIsolated(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewWalk, err)
	}
	n := s.Len()

	w := s.Adjacency()
	a, _ := matrix.NewDense(n, n)
	e, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		p := 1 / float64(s.Degree(i))
		for _, j := range s.Neighbors(i) {
			_ = a.Set(i, j, p)
			_ = e.Set(j, i, p/float64(n))
		}
	}

	return &Walk{s: s, n: n, W: w, A: a, E: e, D: matrix.ColSums(e)}, nil
}

// Len returns the population size N.
func (w *Walk) Len() int { return w.n }

// Structure returns the graph the walk was built from.
func (w *Walk) Structure() *structure.Structure { return w.s }

// step returns A[i][k] for a neighbour k of i without a matrix lookup.
func (w *Walk) step(i int) float64 { return 1 / float64(w.s.Degree(i)) }

// checkRate validates μ. A rate of exactly zero is reported as singular:
// without mutation the neutral process has no unique stationary state.
func checkRate(method string, mu float64) error {
	if math.IsNaN(mu) || mu < 0 || mu > 1 {
		return fmt.Errorf("%s: mu=%g: %w", method, mu, ErrMutationRate)
	}
	if mu == 0 {
		return singularf(method, mu, nil)
	}

	return nil
}
