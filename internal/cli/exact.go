// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/internal/store"
)

// exactCommand prints f'(0) for both goods on the exact grid, per benefit.
func (a *app) exactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Exact first-order selection effects for both goods",
		Long: `Computes structure coefficients once per mutation rate on the grid 1/n..1 and
evaluates the first-order effect f'(0) of additive (ff) and proportional (pp)
goods for every benefit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			cfg := a.cfg
			s, err := buildStructure(cfg.Graph, cfg.GraphSeed)
			if err != nil {
				return err
			}
			results, err := exactSeries(ctx, cfg, s)
			if err != nil {
				return err
			}

			rec, err := openRecorder(ctx, cfg, s)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := rec.close(); err == nil {
					err = cerr
				}
			}()

			for i, res := range results {
				b := cfg.Benefits[i]
				printTitle(a.out, "%s  b=%g  c=%g", cfg.Graph, b, cfg.Cost)
				printTable(a.out, []string{"mu", "ff", "pp"}, res.Rates, res.Additive, res.Proportional)
				for _, g := range goods.All {
					if err = rec.save(ctx, store.Series{
						Benefit: b, Good: g, Kind: store.Exact, Rates: res.Rates, Values: res.Effects(g),
					}); err != nil {
						return err
					}
				}
			}
			if rec != nil {
				printSuccess(a.out, "Saved run %d to %s", rec.runID, cfg.Database)
			}

			return nil
		},
	}
	a.flags.register(cmd, flagName, flagGraph, flagGraphSeed, flagBenefit, flagCost, flagExactPts, flagSolver)

	return cmd
}
