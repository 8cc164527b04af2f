// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"strings"
)

// Solver selects the linear solver for the identity-by-state system.
type Solver int

const (
	// Direct solves the pair system by LU factorization with partial pivoting.
	Direct Solver = iota + 1

	// LeastSquares runs LSQR on the sparse pair system.
	LeastSquares
)

// ParseSolver accepts "direct"/"spsolve" and "least-squares"/"lsqr",
// case-insensitively.
func ParseSolver(s string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "spsolve":
		return Direct, nil
	case "least-squares", "lsqr":
		return LeastSquares, nil
	default:
		return 0, fmt.Errorf("ParseSolver(%q): %w", s, ErrUnknownSolver)
	}
}

// Validate returns ErrUnknownSolver unless s is Direct or LeastSquares.
func (s Solver) Validate() error {
	if s != Direct && s != LeastSquares {
		return fmt.Errorf("solver %d: %w", int(s), ErrUnknownSolver)
	}

	return nil
}

func (s Solver) String() string {
	switch s {
	case Direct:
		return "direct"
	case LeastSquares:
		return "least-squares"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}
