// SPDX-License-Identifier: MIT

package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/structure"
)

// Sentinel errors for population construction and runs.
var (
	// ErrStateLength indicates a state vector whose length differs from N.
	ErrStateLength = errors.New("simulation: each individual must have a state")

	// ErrInvalidTrait indicates a state value other than 0 or 1.
	ErrInvalidTrait = errors.New("simulation: trait must be 0 or 1")

	// ErrNotFinite indicates a NaN or ±Inf benefit, cost, mutation rate or
	// selection intensity.
	ErrNotFinite = errors.New("simulation: parameter must be a finite real number")

	// ErrMutationRate indicates μ outside [0, 1].
	ErrMutationRate = errors.New("simulation: mutation rate must be in [0, 1]")

	// ErrSelectionIntensity indicates δ < 0.
	ErrSelectionIntensity = errors.New("simulation: selection intensity must be non-negative")

	// ErrSteps indicates a non-positive number of updates.
	ErrSteps = errors.New("simulation: number of updates must be positive")
)

// Params are the immutable parameters of the death–birth process.
type Params struct {
	Good     goods.Good
	Benefit  float64 // b
	Cost     float64 // c
	Mutation float64 // μ, per-offspring probability scale; a flip happens with μ/2
	Delta    float64 // δ, selection intensity
}

// Validate checks every parameter, in a fixed order, against its sentinel.
func (p Params) Validate() error {
	if err := p.Good.Validate(); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"b", p.Benefit}, {"c", p.Cost}, {"mu", p.Mutation}, {"delta", p.Delta}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s=%g: %w", f.name, f.v, ErrNotFinite)
		}
	}
	if p.Mutation < 0 || p.Mutation > 1 {
		return fmt.Errorf("mu=%g: %w", p.Mutation, ErrMutationRate)
	}
	if p.Delta < 0 {
		return fmt.Errorf("delta=%g: %w", p.Delta, ErrSelectionIntensity)
	}

	return nil
}

// Rule is the death–birth transition on a fixed graph. It holds no
// mutable state and can be shared between goroutines; every call gets the
// state and the random source explicitly.
type Rule struct {
	s *structure.Structure
	p Params
}

// NewRule validates p and s and returns the transition rule.
func NewRule(s *structure.Structure, p Params) (*Rule, error) {
	if s == nil {
		return nil, structure.ErrEmpty
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.RequireNoIsolated(); err != nil {
		return nil, err
	}

	return &Rule{s: s, p: p}, nil
}

// Params returns the rule's parameters.
func (r *Rule) Params() Params { return r.p }

// Structure returns the rule's graph.
func (r *Rule) Structure() *structure.Structure { return r.s }

// payoff returns the payoff of individual i in state.
//
//   - Additive:     −c·s[i] + Σ_{k∈N(i)} s[k]·b/deg(k)
//   - Proportional: −c·deg(i)·s[i] + Σ_{k∈N(i)} s[k]·b
func (r *Rule) payoff(state []int, i int) float64 {
	nbrs := r.s.Neighbors(i)
	var gain float64
	if r.p.Good == goods.Additive {
		for _, k := range nbrs {
			if state[k] != 0 {
				gain += float64(state[k]) * r.p.Benefit / float64(len(r.s.Neighbors(k)))
			}
		}

		return gain - r.p.Cost*float64(state[i])
	}
	for _, k := range nbrs {
		gain += float64(state[k]) * r.p.Benefit
	}

	return gain - r.p.Cost*float64(len(nbrs))*float64(state[i])
}

// Event describes one update: the individual at Site, carrying Previous,
// died and was replaced by offspring of Parent carrying Trait.
type Event struct {
	Site     int
	Parent   int
	Previous int
	Trait    int
	Mutated  bool
}

// Step applies one death–birth update to state in place and reports it.
//
// Implementation:
//   - Stage 1: Choose the dying individual uniformly at random.
//   - Stage 2: Weigh each neighbour by exp(δ·(payoff − max payoff)).
//   - Stage 3: Draw the parent proportional to weight.
//   - Stage 4: The offspring copies the parent's trait, flipped with
//     probability μ/2.
//
// Complexity: O(deg(site)·max deg) for the payoffs.
func (r *Rule) Step(state []int, rng *rand.Rand) Event {
	return r.step(state, rng, nil)
}

// step is Step with a reusable weight buffer.
func (r *Rule) step(state []int, rng *rand.Rand, buf []float64) Event {
	site := rng.Intn(r.s.Len())
	nbrs := r.s.Neighbors(site)
	if cap(buf) < len(nbrs) {
		buf = make([]float64, len(nbrs))
	}
	w := buf[:len(nbrs)]

	best := math.Inf(-1)
	for k, nb := range nbrs {
		w[k] = r.payoff(state, nb)
		if w[k] > best {
			best = w[k]
		}
	}
	var total float64
	for k := range w {
		w[k] = math.Exp(r.p.Delta * (w[k] - best))
		total += w[k]
	}

	parent := nbrs[len(nbrs)-1]
	x := rng.Float64() * total
	for k, wk := range w {
		if x < wk {
			parent = nbrs[k]
			break
		}
		x -= wk
	}

	ev := Event{Site: site, Parent: parent, Previous: state[site], Trait: state[parent]}
	if rng.Float64() < r.p.Mutation/2 {
		ev.Trait = 1 - ev.Trait
		ev.Mutated = true
	}
	state[site] = ev.Trait

	return ev
}
