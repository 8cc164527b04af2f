// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/internal/config"
)

const (
	flagName      = "name"
	flagGraph     = "graph"
	flagGraphSeed = "graph-seed"
	flagBenefit   = "benefit"
	flagCost      = "cost"
	flagExactPts  = "exact-points"
	flagSimPts    = "simulation-points"
	flagDelta     = "delta"
	flagUpdates   = "updates"
	flagSolver    = "solver"
	flagSeed      = "seed"
	flagWorkers   = "workers"
	flagDB        = "db"
)

// overrides holds flag values; only flags set on the command line replace
// the resolved experiment's fields.
type overrides struct {
	name      string
	graph     string
	graphSeed int64
	benefits  []float64
	cost      float64
	exactPts  int
	simPts    int
	delta     float64
	updates   int
	solver    string
	seed      int64
	workers   int
	db        string
}

// register adds the named experiment flags to cmd, showing the defaults.
func (o *overrides) register(cmd *cobra.Command, names ...string) {
	d := config.Default()
	fs := cmd.Flags()
	for _, n := range names {
		switch n {
		case flagName:
			fs.StringVar(&o.name, flagName, d.Name, "run label in the results database")
		case flagGraph:
			fs.StringVarP(&o.graph, flagGraph, "g", d.Graph, "structure: "+strings.Join(graphKinds, ", "))
		case flagGraphSeed:
			fs.Int64Var(&o.graphSeed, flagGraphSeed, d.GraphSeed, "seed for stochastic graph families")
		case flagBenefit:
			fs.Float64SliceVarP(&o.benefits, flagBenefit, "b", d.Benefits, "producer benefit b (repeatable)")
		case flagCost:
			fs.Float64Var(&o.cost, flagCost, d.Cost, "producer cost c")
		case flagExactPts:
			fs.IntVar(&o.exactPts, flagExactPts, d.ExactPoints, "mutation rates on the exact grid 1/n..1")
		case flagSimPts:
			fs.IntVar(&o.simPts, flagSimPts, d.SimulationPoints, "mutation rates on the simulation grid 1/(n+1)..n/(n+1)")
		case flagDelta:
			fs.Float64VarP(&o.delta, flagDelta, "d", d.Delta, "selection intensity δ")
		case flagUpdates:
			fs.IntVarP(&o.updates, flagUpdates, "n", d.Steps, "updates per simulation")
		case flagSolver:
			fs.StringVar(&o.solver, flagSolver, d.Solver, "identity-by-state solver: direct|least-squares")
		case flagSeed:
			fs.Int64Var(&o.seed, flagSeed, d.Seed, "simulation base seed")
		}
	}
}

// apply copies every flag changed on cmd (own or inherited) into e.
func (o *overrides) apply(cmd *cobra.Command, e *config.Experiment) {
	fs := cmd.Flags()
	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}
	set(flagName, func() { e.Name = o.name })
	set(flagGraph, func() { e.Graph = o.graph })
	set(flagGraphSeed, func() { e.GraphSeed = o.graphSeed })
	set(flagBenefit, func() { e.Benefits = append([]float64(nil), o.benefits...) })
	set(flagCost, func() { e.Cost = o.cost })
	set(flagExactPts, func() { e.ExactPoints = o.exactPts })
	set(flagSimPts, func() { e.SimulationPoints = o.simPts })
	set(flagDelta, func() { e.Delta = o.delta })
	set(flagUpdates, func() { e.Steps = o.updates })
	set(flagSolver, func() { e.Solver = o.solver })
	set(flagSeed, func() { e.Seed = o.seed })
	set(flagWorkers, func() { e.Workers = o.workers })
	set(flagDB, func() { e.Database = o.db })
}
