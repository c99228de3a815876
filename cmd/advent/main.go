// Package main provides the advent CLI, a thin shell over the advent
// toolbox packages for quick experiments on puzzle inputs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Khighness/advent/internal/config"
	"github.com/Khighness/advent/internal/logx"
)

// @Author KHighness
// @Update 2026-10-19

// Build information, set through -ldflags.
var (
	version = "dev"
	commit  = "none"
)

// app carries what every command needs once flags have been parsed.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logx.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

// openInput returns the file named by the first argument, or stdin.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "advent",
		Short: "Puzzle toolbox: top-k, range merging, disjoint sets and exact linear systems",
		Long: `advent runs the shared puzzle primitives over plain-text input.

Every command reads the file given as its argument, or stdin when it is
omitted or "-".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./advent.yaml or $HOME/advent.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(topCmd(a))
	rootCmd.AddCommand(mergeCmd(a))
	rootCmd.AddCommand(setsCmd(a))
	rootCmd.AddCommand(solveCmd(a))
	rootCmd.AddCommand(heavyCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "version",
		Short:            "Show version information",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advent %s (commit: %s)\n", version, commit)
		},
	}
}
