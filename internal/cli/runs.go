// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sigma/internal/store"
)

// ErrNoDatabase indicates a runs subcommand invoked without --db or SIGMA_DB.
var ErrNoDatabase = errors.New("cli: no results database configured (use --db or SIGMA_DB)")

func (a *app) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the results database",
	}
	cmd.AddCommand(a.runsListCommand())
	cmd.AddCommand(a.runsExportCommand())

	return cmd
}

func (a *app) runsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printDetail(a.out, "no runs in %s", a.cfg.Database)
				return nil
			}

			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = []string{
					strconv.FormatInt(r.ID, 10),
					shortUUID(r.UUID),
					r.Name,
					r.Graph,
					strconv.Itoa(r.Nodes),
					r.Solver,
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
				}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("ID", "UUID", "Name", "Graph", "Nodes", "Solver", "Created").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					return lipgloss.NewStyle()
				})
			fmt.Fprintln(a.out, t)

			return nil
		},
	}
}

func (a *app) runsExportCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Export a run's series as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("run id %q: %w", args[0], err)
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			var w io.Writer = a.out
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create csv: %w", err)
				}
				defer func() {
					if cerr := f.Close(); err == nil && cerr != nil {
						err = fmt.Errorf("close csv: %w", cerr)
					}
				}()
				w = f
			}

			return st.ExportCSV(cmd.Context(), id, w)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	return cmd
}

func (a *app) openStore() (*store.Store, error) {
	if a.cfg.Database == "" {
		return nil, ErrNoDatabase
	}

	return store.Open(a.cfg.Database)
}

// shortUUID keeps the first group of a run UUID for tabular display.
func shortUUID(s string) string {
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}

	return s
}
