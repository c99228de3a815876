package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/internal/input"
	"github.com/Khighness/advent/topk"
)

// @Author KHighness
// @Update 2026-10-19

func topCmd(a *app) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "top [file]",
		Short: "Print the k greatest integers of the input and their sum",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("k") {
				k = a.cfg.Top.K
			}

			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			values, err := input.Ints(in)
			if err != nil {
				return err
			}

			start := time.Now()
			top, ok := topk.TopOrdered(slices.Values(values), k)
			a.log.Debug("top selected", zap.Int("values", len(values)), zap.Int("k", k), zap.Duration("elapsed", time.Since(start)))
			if !ok {
				return fmt.Errorf("need at least %d values, got %d", k, len(values))
			}

			out := cmd.OutOrStdout()
			var sum int64
			for _, v := range top {
				fmt.Fprintln(out, v)
				sum += v
			}
			fmt.Fprintf(out, "sum: %d\n", sum)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of values to keep (default from config top.k)")

	return cmd
}
