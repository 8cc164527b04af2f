// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/internal/store"
	"github.com/katalvlaran/sigma/simulation"
	"github.com/katalvlaran/sigma/sweep"
)

// simulateCommand runs the death–birth process for one good.
func (a *app) simulateCommand() *cobra.Command {
	var (
		goodName string
		trait    int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate the death–birth process for one good",
		Long: `Averages the frequency of a trait over many death–birth updates at every
mutation rate of the grid 1/(n+1)..n/(n+1). For producers (trait 1) the
rescaled value (x − ½)/δ estimates the exact first-order effect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			cfg := a.cfg
			good, err := goods.Parse(goodName)
			if err != nil {
				return err
			}
			if trait != 0 && trait != 1 {
				return fmt.Errorf("--trait %d: %w", trait, simulation.ErrInvalidTrait)
			}
			s, err := buildStructure(cfg.Graph, cfg.GraphSeed)
			if err != nil {
				return err
			}

			var rec *recorder
			if trait == 1 {
				if rec, err = openRecorder(ctx, cfg, s); err != nil {
					return err
				}
				defer func() {
					if cerr := rec.close(); err == nil {
						err = cerr
					}
				}()
			}

			for bi, b := range cfg.Benefits {
				rates, freq, err := simulateSeries(ctx, cfg, s, good, bi, trait)
				if err != nil {
					return err
				}
				effect, err := sweep.Rescale(freq, cfg.Delta)
				if err != nil {
					return err
				}
				printTitle(a.out, "%s  %s  b=%g  c=%g  δ=%g  trait=%d", cfg.Graph, good, b, cfg.Cost, cfg.Delta, trait)
				printTable(a.out, []string{"mu", "frequency", "rescaled"}, rates, freq, effect)
				if err = rec.save(ctx, store.Series{
					Benefit: b, Good: good, Kind: store.Simulation, Rates: rates, Values: effect,
				}); err != nil {
					return err
				}
			}
			if rec != nil {
				printSuccess(a.out, "Saved run %d to %s", rec.runID, cfg.Database)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&goodName, "good", goods.Additive.Short(), "public good: ff|additive or pp|proportional")
	cmd.Flags().IntVar(&trait, "trait", 1, "trait whose frequency is averaged (1 producer, 0 non-producer)")
	a.flags.register(cmd, flagName, flagGraph, flagGraphSeed, flagBenefit, flagCost, flagSimPts,
		flagDelta, flagUpdates, flagSeed)

	return cmd
}
