// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sigma/structure"
)

const (
	methodNewPopulation = "NewPopulation"
	methodPayoff        = "Payoff"
	methodUpdate        = "Update"

	// cancelCheckEvery is how many updates run between context checks.
	cancelCheckEvery = 1 << 16
)

// Population is a trait configuration evolving under a Rule. It tracks the
// number of producers incrementally, so frequencies are O(1).
// A Population is not safe for concurrent use.
type Population struct {
	rule  *Rule
	state []int
	ones  int
	buf   []float64
}

// NewPopulation validates its inputs and returns a population owning a
// copy of state.
//
// Errors (checked in this order):
//   - structure.ErrEmpty for a nil structure.
//   - ErrStateLength if len(state) != N.
//   - ErrInvalidTrait for a state value other than 0 or 1.
//   - goods.ErrUnknownGood, ErrNotFinite, ErrMutationRate,
//     ErrSelectionIntensity for invalid parameters.
//   - structure.ErrIsolatedNode if a node has no neighbours.
func NewPopulation(s *structure.Structure, state []int, p Params) (*Population, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodNewPopulation, structure.ErrEmpty)
	}
	if len(state) != s.Len() {
		return nil, fmt.Errorf("%s: len(state)=%d, N=%d: %w", methodNewPopulation, len(state), s.Len(), ErrStateLength)
	}
	ones := 0
	for i, v := range state {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%s: state[%d]=%d: %w", methodNewPopulation, i, v, ErrInvalidTrait)
		}
		ones += v
	}
	rule, err := NewRule(s, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewPopulation, err)
	}

	cp := make([]int, len(state))
	copy(cp, state)

	return newPopulation(rule, cp, ones), nil
}

// newPopulation wraps an already validated rule and 0/1 state it takes
// ownership of.
func newPopulation(rule *Rule, state []int, ones int) *Population {
	_, hi := rule.s.DegreeRange()

	return &Population{rule: rule, state: state, ones: ones, buf: make([]float64, hi)}
}

// Rule returns the transition rule.
func (p *Population) Rule() *Rule { return p.rule }

// State returns a copy of the current configuration.
func (p *Population) State() []int {
	out := make([]int, len(p.state))
	copy(out, p.state)

	return out
}

// MeanFrequency returns the fraction of individuals carrying trait
// (0 for a trait nobody can carry).
func (p *Population) MeanFrequency(trait int) float64 {
	n := len(p.state)
	switch trait {
	case 1:
		return float64(p.ones) / float64(n)
	case 0:
		return float64(n-p.ones) / float64(n)
	default:
		return 0
	}
}

// Payoff returns the payoffs of the individuals in subset, in subset order.
func (p *Population) Payoff(subset []int) ([]float64, error) {
	out := make([]float64, len(subset))
	for k, i := range subset {
		if i < 0 || i >= len(p.state) {
			return nil, fmt.Errorf("%s: individual %d: %w", methodPayoff, i, structure.ErrNodeOutOfRange)
		}
		out[k] = p.rule.payoff(p.state, i)
	}

	return out, nil
}

// Step applies one death–birth update.
func (p *Population) Step(rng *rand.Rand) Event {
	ev := p.rule.step(p.state, rng, p.buf)
	p.ones += ev.Trait - ev.Previous

	return ev
}

// Update applies steps updates and returns the frequency of trait after
// each one.
func (p *Population) Update(rng *rand.Rand, trait, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodUpdate, steps, ErrSteps)
	}
	if trait != 0 && trait != 1 {
		return nil, fmt.Errorf("%s: trait=%d: %w", methodUpdate, trait, ErrInvalidTrait)
	}
	out := make([]float64, steps)
	for t := range out {
		p.Step(rng)
		out[t] = p.MeanFrequency(trait)
	}

	return out, nil
}

// MeanOver applies steps updates and returns the mean, over those
// updates, of the post-update frequency of trait. It equals the mean of
// Update's trajectory without storing it.
func (p *Population) MeanOver(rng *rand.Rand, trait, steps int) (float64, error) {
	return p.meanOver(context.Background(), rng, trait, steps)
}

func (p *Population) meanOver(ctx context.Context, rng *rand.Rand, trait, steps int) (float64, error) {
	if steps < 1 {
		return 0, fmt.Errorf("%s: steps=%d: %w", methodUpdate, steps, ErrSteps)
	}
	if trait != 0 && trait != 1 {
		return 0, fmt.Errorf("%s: trait=%d: %w", methodUpdate, trait, ErrInvalidTrait)
	}
	// Integer sum of producer counts keeps the mean exact up to the final division.
	var ones int64
	for t := 0; t < steps; t++ {
		if t%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		p.Step(rng)
		ones += int64(p.ones)
	}
	mean := float64(ones) / (float64(steps) * float64(len(p.state)))
	if trait == 0 {
		mean = 1 - mean
	}

	return mean, nil
}
