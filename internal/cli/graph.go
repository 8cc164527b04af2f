// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// graphCommand describes the structure a --graph spec resolves to.
func (a *app) graphCommand() *cobra.Command {
	var listEdges bool
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Describe the structure selected by --graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			s, err := buildStructure(cfg.Graph, cfg.GraphSeed)
			if err != nil {
				return err
			}
			lo, hi := s.DegreeRange()
			mean := 0.0
			if s.Len() > 0 {
				mean = 2 * float64(s.EdgeCount()) / float64(s.Len())
			}

			printTitle(a.out, "%s", cfg.Graph)
			printDetail(a.out, "nodes: %d", s.Len())
			printDetail(a.out, "edges: %d", s.EdgeCount())
			printDetail(a.out, "degree: min %d, max %d, mean %.4g", lo, hi, mean)
			printDetail(a.out, "connected: %t", s.Connected())
			if listEdges {
				for _, e := range s.Edges() {
					fmt.Fprintf(a.out, "%d %d\n", e[0], e[1])
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&listEdges, "edges", false, "print the edge list, one \"u v\" pair per line")
	a.flags.register(cmd, flagGraph, flagGraphSeed)

	return cmd
}
