// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sigma/exact"
	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/internal/config"
	"github.com/katalvlaran/sigma/internal/store"
	"github.com/katalvlaran/sigma/simulation"
	"github.com/katalvlaran/sigma/structure"
	"github.com/katalvlaran/sigma/sweep"
)

// recorder persists one command's series; a nil recorder discards them.
type recorder struct {
	st    *store.Store
	runID int64
}

// openRecorder creates the run row when cfg names a database.
func openRecorder(ctx context.Context, cfg *config.Experiment, s *structure.Structure) (*recorder, error) {
	if cfg.Database == "" {
		return nil, nil
	}
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	id, err := st.CreateRun(ctx, store.Run{
		Name:   cfg.Name,
		Graph:  cfg.Graph,
		Nodes:  s.Len(),
		Edges:  s.Edges(),
		Cost:   cfg.Cost,
		Delta:  cfg.Delta,
		Steps:  cfg.Steps,
		Solver: cfg.SolverKind().String(),
		Seed:   cfg.Seed,
	})
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	loggerFromContext(ctx).Debug("recording run", "db", cfg.Database, "id", id)

	return &recorder{st: st, runID: id}, nil
}

func (r *recorder) save(ctx context.Context, sr store.Series) error {
	if r == nil {
		return nil
	}

	return r.st.SaveSeries(ctx, r.runID, sr)
}

func (r *recorder) close() error {
	if r == nil {
		return nil
	}

	return r.st.Close()
}

// exactSeries sweeps the exact grid once and evaluates every benefit.
func exactSeries(ctx context.Context, cfg *config.Experiment, s *structure.Structure) ([]*exact.Result, error) {
	logger := loggerFromContext(ctx)
	rates, err := sweep.ExactRates(cfg.ExactPoints)
	if err != nil {
		return nil, err
	}

	p := newProgress(logger)
	ks, err := exact.Sweep(ctx, s, rates,
		exact.WithSolver(cfg.SolverKind()),
		exact.WithWorkers(cfg.Workers),
		exact.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	p.done("Structure coefficients", "rates", len(rates), "solver", cfg.SolverKind())

	out := make([]*exact.Result, len(cfg.Benefits))
	for i, b := range cfg.Benefits {
		if out[i], err = exact.Evaluate(ks, b, cfg.Cost); err != nil {
			return nil, fmt.Errorf("benefit %g: %w", b, err)
		}
	}

	return out, nil
}

// seriesSeed derives the base seed of one simulated series so that series
// for different benefits or goods never share random streams. Task indices
// stay below bit 32, the good occupies bits 32..39 and the benefit index
// the bits above.
func seriesSeed(base int64, benefit int, good goods.Good) int64 {
	return base ^ int64(good)<<32 ^ int64(benefit)<<40
}

// simulateSeries returns the mean frequency of trait for good at every rate
// of the simulation grid, for the benefit cfg.Benefits[bi].
func simulateSeries(ctx context.Context, cfg *config.Experiment, s *structure.Structure, good goods.Good, bi, trait int) ([]float64, []float64, error) {
	logger := loggerFromContext(ctx)
	rates, err := sweep.SimulationRates(cfg.SimulationPoints)
	if err != nil {
		return nil, nil, err
	}
	b := cfg.Benefits[bi]

	p := newProgress(logger)
	freq, err := simulation.Run(ctx, s, good, b, cfg.Cost, rates, cfg.Delta, cfg.Steps, trait,
		simulation.WithWorkers(cfg.Workers),
		simulation.WithSeed(seriesSeed(cfg.Seed, bi, good)),
		simulation.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	p.done("Simulations", "good", good.Short(), "b", b, "rates", len(rates), "updates", cfg.Steps)

	return rates, freq, nil
}
