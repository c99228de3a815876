package main

import (
	"bufio"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/topk"
)

// @Author KHighness
// @Update 2026-10-19

func heavyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "heavy [file]",
		Short: "Estimate the most frequent words of a stream with HeavyKeeper",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			hc := a.cfg.Heavy
			hk := topk.NewHeavyKeeper(hc.K, hc.Width, hc.Depth, hc.Decay, hc.MinCount)

			sc := bufio.NewScanner(in)
			sc.Split(bufio.ScanWords)
			for sc.Scan() {
				if expelled, _ := hk.Add(sc.Text(), 1); expelled != "" {
					a.log.Debug("expelled", zap.String("key", expelled))
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"key", "count"})
			for _, item := range hk.List() {
				tbl.AppendRow(table.Row{item.Key, item.Count})
			}
			tbl.AppendFooter(table.Row{"total", hk.Total()})

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
}
