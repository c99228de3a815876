package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/disjointset"
	"github.com/Khighness/advent/internal/input"
)

// @Author KHighness
// @Update 2026-10-19

func setsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sets [file]",
		Short: "Join elements into disjoint sets and list the resulting sets",
		Long: `Sets reads the element count on the first line and one "a b" pair per
following line, joins every pair and prints the sets, largest first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			n, edges, err := input.Edges(in)
			if err != nil {
				return err
			}

			d := disjointset.New(n)
			joined := 0
			for _, e := range edges {
				if !d.Connected(e.From, e.To) {
					joined++
				}
				d.Join(e.From, e.To)
			}
			a.log.Debug("sets joined", zap.Int("elements", n), zap.Int("pairs", len(edges)), zap.Int("merges", joined))

			sets := slices.Collect(d.All())
			slices.SortStableFunc(sets, func(x, y disjointset.Set) int {
				if c := cmp.Compare(y.Size, x.Size); c != 0 {
					return c
				}
				return cmp.Compare(x.Member, y.Member)
			})
			total := len(sets)
			if limit > 0 && len(sets) > limit {
				sets = sets[:limit]
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"member", "size"})
			for _, s := range sets {
				tbl.AppendRow(table.Row{s.Member, s.Size})
			}
			tbl.AppendFooter(table.Row{"sets", total})

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "print only the largest sets (0 prints all)")

	return cmd
}
