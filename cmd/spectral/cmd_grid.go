// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/experiment"
	"github.com/spf13/cobra"
)

func newGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Run every experiment listed in a YAML grid file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			grid, err := config.LoadGrid(path)
			if err != nil {
				return err
			}
			workers, _ := cmd.Flags().GetInt("workers")
			if cmd.Flags().Changed("workers") {
				a.cfg.Set(config.KeyRunWorkers, workers)
			}
			opts, cleanup, err := a.experimentOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			reports, runErr := experiment.RunGrid(cmd.Context(), grid,
				experiment.Config{Workers: a.cfg.Workers()}, opts.options...)
			failures := 0
			for _, rep := range reports {
				failures += rep.Failures
				printReport(cmd, rep)
			}
			if err := opts.recorder.WriteTextfile(a.cfg.MetricsFile()); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if failures > 0 {
				return fmt.Errorf("%d samples failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().String("file", "", "Grid file")
	cmd.Flags().Int("workers", 0, "Parallel samples (default from config run.workers)")
	cmd.Flags().String("sqlite", "", "Also store samples in this SQLite database")
	cmd.Flags().String("metrics-file", "", "Write prometheus metrics to this textfile")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
