// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/internal/store"
	"github.com/katalvlaran/sigma/sweep"
)

// compareCommand produces a figure-1 panel per benefit: exact curves for
// both goods next to rescaled simulations on the coarser grid.
func (a *app) compareCommand() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Exact effects and rescaled simulations side by side",
		Long: `For every benefit: the exact sweep on the grid 1/n..1 and simulations of both
goods on the grid 1/(m+1)..m/(m+1), with simulated frequencies rescaled as
(x − ½)/δ. With --db the run is stored; with --csv it is also exported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := cmd.Context()
			cfg := a.cfg
			if csvPath != "" && cfg.Database == "" {
				return fmt.Errorf("--csv needs a results database (--db or SIGMA_DB)")
			}
			s, err := buildStructure(cfg.Graph, cfg.GraphSeed)
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

			exactResults, err := exactSeries(ctx, cfg, s)
			if err != nil {
				return err
			}
			for i, b := range cfg.Benefits {
				res := exactResults[i]
				printTitle(a.out, "%s  b=%g  c=%g  exact", cfg.Graph, b, cfg.Cost)
				printTable(a.out, []string{"mu", "ff", "pp"}, res.Rates, res.Additive, res.Proportional)

				sim := make(map[goods.Good][]float64, len(goods.All))
				var rates []float64
				for _, g := range goods.All {
					if err = rec.save(ctx, store.Series{
						Benefit: b, Good: g, Kind: store.Exact, Rates: res.Rates, Values: res.Effects(g),
					}); err != nil {
						return err
					}
					r, freq, err := simulateSeries(ctx, cfg, s, g, i, 1)
					if err != nil {
						return err
					}
					if sim[g], err = sweep.Rescale(freq, cfg.Delta); err != nil {
						return err
					}
					rates = r
					if err = rec.save(ctx, store.Series{
						Benefit: b, Good: g, Kind: store.Simulation, Rates: r, Values: sim[g],
					}); err != nil {
						return err
					}
				}
				printTitle(a.out, "%s  b=%g  c=%g  δ=%g  simulation (rescaled)", cfg.Graph, b, cfg.Cost, cfg.Delta)
				printTable(a.out, []string{"mu", "ff", "pp"}, rates, sim[goods.Additive], sim[goods.Proportional])
			}

			if rec == nil {
				return nil
			}
			printSuccess(a.out, "Saved run %d to %s", rec.runID, cfg.Database)
			if csvPath == "" {
				return nil
			}
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("create csv: %w", err)
			}
			if err = rec.st.ExportCSV(ctx, rec.runID, f); err != nil {
				_ = f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return fmt.Errorf("close csv: %w", err)
			}
			printDetail(a.out, "CSV: %s", csvPath)

			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "also export the stored run to this CSV file")
	a.flags.register(cmd, flagName, flagGraph, flagGraphSeed, flagBenefit, flagCost, flagExactPts,
		flagSimPts, flagDelta, flagUpdates, flagSolver, flagSeed)

	return cmd
}
