// SPDX-License-Identifier: MIT

// Package cli implements the sigma command-line interface.
//
// # Commands
//
//   - exact: first-order selection effects for both goods on the exact grid
//   - simulate: long-run producer frequencies from the death–birth process
//   - compare: exact curves and rescaled simulations side by side, per benefit
//   - graph: describe a structure spec
//   - runs: list stored runs and export them as CSV
//
// # Configuration
//
// Every command starts from config.Default(), layers an optional --config
// file (TOML or YAML) and SIGMA_* environment variables, then the flags
// given on the command line, and validates the result.
//
// # Logging
//
// --verbose (-v) switches to debug level, which logs one line per mutation
// rate. Loggers travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/internal/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// from values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	verbose    bool
	flags      overrides

	cfg *config.Experiment
}

// Execute runs the sigma CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "sigma",
		Short:        "First-order selection effects of public goods on graphs",
		Long:         `sigma computes how weak selection moves the frequency of producers of additive ("ff") and proportional ("pp") public goods on a graph-structured population, exactly and by simulation.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("sigma %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "experiment file (.toml, .yaml)")
	pf.IntVarP(&a.flags.workers, flagWorkers, "w", 0, "concurrent mutation rates (0 = one per CPU)")
	pf.StringVar(&a.flags.db, flagDB, "", "sqlite results database (empty disables persistence)")

	root.AddCommand(a.exactCommand())
	root.AddCommand(a.simulateCommand())
	root.AddCommand(a.compareCommand())
	root.AddCommand(a.graphCommand())
	root.AddCommand(a.runsCommand())

	return root
}

// prepare resolves the experiment and attaches the logger to the context.
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return err
	}
	a.flags.apply(cmd, cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = charmlog.DebugLevel
	}
	a.cfg = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, newLogger(a.errOut, level)))

	return nil
}
