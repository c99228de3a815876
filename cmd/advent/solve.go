package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/internal/input"
	"github.com/Khighness/advent/linsys"
)

// @Author KHighness
// @Update 2026-10-19

func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a linear system exactly",
		Long: `Solve reads one equation per line, coefficients then "=" then the
right-hand side, for example:

  2 1 = 5
  1 -1 = 1

Values may be fractions such as 3/4. The solution is printed exactly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			lefts, rights, err := input.System(in)
			if err != nil {
				return err
			}
			if len(lefts) == 0 {
				return fmt.Errorf("%w: no equations", input.ErrMalformed)
			}

			start := time.Now()
			x, err := linsys.Solve(lefts, rights)
			a.log.Debug("system solved", zap.Int("equations", len(rights)), zap.Duration("elapsed", time.Since(start)), zap.Error(err))

			out := cmd.OutOrStdout()
			if err != nil {
				color.New(color.FgRed).Fprintf(out, "no solution: %v\n", err)
				return fmt.Errorf("failed to solve system: %w", err)
			}

			vars := len(lefts[0])
			for i, v := range x[:vars] {
				fmt.Fprintf(out, "x%d = %s\n", i, v)
			}
			return nil
		},
	}
}
