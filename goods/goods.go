// SPDX-License-Identifier: MIT

// Package goods enumerates the two ways a producer's benefit is shared
// among its neighbours.
//
//   - Additive ("ff"): a producer pays c once and spreads b evenly over its
//     neighbours, each receiving b/deg(producer).
//   - Proportional ("pp"): a producer pays c per neighbour and gives each
//     neighbour the full b.
package goods

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGood indicates a good type outside the closed enumeration.
var ErrUnknownGood = errors.New("goods: unknown good type (want additive|ff or proportional|pp)")

// Good is the closed set of public-goods types.
type Good int

const (
	// Additive benefits: fixed total cost, benefit split across neighbours.
	Additive Good = iota + 1

	// Proportional benefits: cost and benefit both scale with degree.
	Proportional
)

// All lists every valid Good in reporting order.
var All = []Good{Additive, Proportional}

// Parse accepts "additive"/"ff" and "proportional"/"pp", case-insensitively.
func Parse(s string) (Good, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "additive", "ff":
		return Additive, nil
	case "proportional", "pp":
		return Proportional, nil
	default:
		return 0, fmt.Errorf("Parse(%q): %w", s, ErrUnknownGood)
	}
}

// Validate returns ErrUnknownGood unless g is Additive or Proportional.
func (g Good) Validate() error {
	if g != Additive && g != Proportional {
		return fmt.Errorf("good %d: %w", int(g), ErrUnknownGood)
	}

	return nil
}

// String returns the long name.
func (g Good) String() string {
	switch g {
	case Additive:
		return "additive"
	case Proportional:
		return "proportional"
	default:
		return fmt.Sprintf("Good(%d)", int(g))
	}
}

// Short returns the two-letter label ("ff" or "pp").
func (g Good) Short() string {
	switch g {
	case Additive:
		return "ff"
	case Proportional:
		return "pp"
	default:
		return "??"
	}
}
