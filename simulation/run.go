// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/structure"
	"github.com/katalvlaran/sigma/sweep"
)

const (
	methodRun = "Run"

	// DefaultSeed seeds runs that do not set WithSeed.
	DefaultSeed int64 = 1
)

type config struct {
	workers int
	seed    int64
	logger  *log.Logger
}

// Option configures Run.
type Option func(*config)

// WithWorkers bounds concurrent mutation rates. 0 means runtime.NumCPU().
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("simulation: WithWorkers(%d): negative worker count", n))
	}

	return func(c *config) { c.workers = n }
}

// WithSeed sets the base seed; task i draws from its own source seeded
// seed XOR i, so results depend only on (seed, i) and never on scheduling.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger routes per-rate debug lines to l. A nil logger discards them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// TaskSource returns the random source Run uses for task i.
func TaskSource(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ int64(i)))
}

// Run simulates the death–birth process once per mutation rate and returns
// the time-averaged frequency of trait, index-aligned with rates.
//
// Implementation:
//   - Stage 1: Validate every parameter set before starting any work.
//   - Stage 2: Per rate, draw a fair-coin initial state from the task's
//     own source, then average the frequency over steps updates.
//   - Stage 3: sweep.Map runs rates in parallel; out[i] belongs to rates[i].
//
// Errors: validation sentinels, ErrSteps, ErrInvalidTrait, or the first
// task failure as *sweep.TaskError. Cancellation of ctx stops long runs.
func Run(
	ctx context.Context,
	s *structure.Structure,
	good goods.Good,
	b, c float64,
	rates []float64,
	delta float64,
	steps int,
	trait int,
	opts ...Option,
) ([]float64, error) {
	cfg := config{seed: DefaultSeed, logger: log.New(io.Discard)}
	for _, o := range opts {
		o(&cfg)
	}

	if steps < 1 {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodRun, steps, ErrSteps)
	}
	if trait != 0 && trait != 1 {
		return nil, fmt.Errorf("%s: trait=%d: %w", methodRun, trait, ErrInvalidTrait)
	}
	rules := make([]*Rule, len(rates))
	for i, mu := range rates {
		r, err := NewRule(s, Params{Good: good, Benefit: b, Cost: c, Mutation: mu, Delta: delta})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, &sweep.TaskError{Index: i, Err: err})
		}
		rules[i] = r
	}

	out, err := sweep.Map(ctx, len(rates), cfg.workers, func(ctx context.Context, i int) (float64, error) {
		start := time.Now()
		rng := TaskSource(cfg.seed, i)
		state := make([]int, s.Len())
		ones := 0
		for k := range state {
			state[k] = rng.Intn(2)
			ones += state[k]
		}
		pop := newPopulation(rules[i], state, ones)
		mean, err := pop.meanOver(ctx, rng, trait, steps)
		if err != nil {
			return 0, err
		}
		cfg.logger.Debug("simulation", "mu", rates[i], "good", good, "steps", steps,
			"mean", mean, "elapsed", time.Since(start).Round(time.Millisecond))

		return mean, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	return out, nil
}
