package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/internal/input"
	"github.com/Khighness/advent/ranges"
)

// @Author KHighness
// @Update 2026-10-19

func mergeCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "merge [file]",
		Short: "Merge overlapping or touching closed ranges",
		Long: `Merge reads one range per line ("a-b" or "a..b") and prints the merged
ranges in ascending order. Ranges that overlap or touch (end + 1 == start)
are merged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			src, err := input.Ranges(in)
			if err != nil {
				return err
			}

			start := time.Now()
			out := cmd.OutOrStdout()
			var merged int
			var covered uint64
			for r := range ranges.MergeInclusive(src).All() {
				merged++
				covered += ranges.IntSteps(r.Start, r.End) + 1
				if !quiet {
					fmt.Fprintln(out, r)
				}
			}
			a.log.Debug("ranges merged", zap.Int("input", len(src)), zap.Int("merged", merged), zap.Duration("elapsed", time.Since(start)))

			fmt.Fprintf(out, "ranges: %d covered: %d\n", merged, covered)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary line")

	return cmd
}
