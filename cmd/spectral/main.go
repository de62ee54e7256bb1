// SPDX-License-Identifier: MIT

// Command spectral runs spectral-stability experiments on synthetic graph
// families: it removes nodes or edges at random until the graph degenerates
// and records how far the Laplacian spectrum drifts from the starting graph.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/spectral/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "spectral",
		Short: "Spectral stability of graphs under random perturbation",
		Long: `spectral builds a graph from a named family, removes random nodes or
edges until fewer than two nodes remain, and records at every step how the
Laplacian spectrum compares with the starting graph (RSS, ISD, TSS), together with
the bulk index and the normalized eigenvector centrality.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().String("output", "", "Root directory of experiment CSV files")

	rootCmd.AddCommand(
		newRunCmd(a),
		newGridCmd(a),
		newSummarizeCmd(a),
		newInspectCmd(a),
		newSeedsCmd(a),
	)

	return rootCmd
}

// init loads the config file and applies flag overrides, then builds the
// logger.
func (a *app) init(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := a.cfg.LoadFromFile(path); err != nil {
			return err
		}
	}
	overrides := map[string]string{
		"log-level":  config.KeyLogLevel,
		"log-format": config.KeyLogFormat,
		"output":     config.KeyOutputDir,
	}
	for flag, key := range overrides {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			a.cfg.Set(key, v)
		}
	}
	a.logger = a.cfg.CreateLogger()

	return nil
}
