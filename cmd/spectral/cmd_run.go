// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spectral/config"
	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/katalvlaran/spectral/store"
	"github.com/katalvlaran/spectral/telemetry"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run perturbation sequences on one graph family",
		Example: `  spectral run --family complete --param num_nodes=20 --kind node --samples 50
  spectral run --family random_binomial --param num_nodes=40,edge_prob=0.2 --seeds-file seeds.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specFromFlags(cmd)
			if err != nil {
				return err
			}
			kinds, err := kindsFromFlag(cmd)
			if err != nil {
				return err
			}
			cfg, err := a.experimentConfig(cmd)
			if err != nil {
				return err
			}
			opts, cleanup, err := a.experimentOptions(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			var failures int
			for _, kind := range kinds {
				rep, err := experiment.Run(cmd.Context(), spec, kind, cfg, opts.options...)
				if err != nil {
					return err
				}
				failures += rep.Failures
				printReport(cmd, rep)
			}
			if err := opts.recorder.WriteTextfile(a.cfg.MetricsFile()); err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d samples failed", failures)
			}
			return nil
		},
	}

	addFamilyFlags(cmd)
	cmd.Flags().String("kind", "both", "Perturbation kind: node, edge or both")
	addRunFlags(cmd)

	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Int("samples", 0, "Samples per experiment (default from config run.samples)")
	cmd.Flags().Int64("seed", 0, "Base seed; sample i uses seed+i")
	cmd.Flags().String("seeds-file", "", "Read per-sample seeds from this file")
	cmd.Flags().Int("workers", 0, "Parallel samples (default from config run.workers)")
	cmd.Flags().String("sqlite", "", "Also store samples in this SQLite database")
	cmd.Flags().String("metrics-file", "", "Write prometheus metrics to this textfile")
}

func (a *app) experimentConfig(cmd *cobra.Command) (experiment.Config, error) {
	if cmd.Flags().Changed("samples") {
		n, _ := cmd.Flags().GetInt("samples")
		a.cfg.Set(config.KeyRunSamples, n)
	}
	if cmd.Flags().Changed("seed") {
		s, _ := cmd.Flags().GetInt64("seed")
		a.cfg.Set(config.KeyRunSeed, s)
	}
	if cmd.Flags().Changed("workers") {
		w, _ := cmd.Flags().GetInt("workers")
		a.cfg.Set(config.KeyRunWorkers, w)
	}
	cfg := experiment.Config{
		Samples:  a.cfg.Samples(),
		BaseSeed: a.cfg.Seed(),
		Workers:  a.cfg.Workers(),
	}
	if path, _ := cmd.Flags().GetString("seeds-file"); path != "" {
		seeds, err := store.ReadSeeds(path)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg.Seeds = seeds
		if !cmd.Flags().Changed("samples") {
			cfg.Samples = 0
		}
	}

	return cfg, nil
}

type runOptions struct {
	options  []experiment.Option
	recorder *telemetry.Recorder
}

// experimentOptions wires logging, sinks, telemetry and the solver. The
// cleanup func closes the SQLite store, if any.
func (a *app) experimentOptions(cmd *cobra.Command) (runOptions, func(), error) {
	if cmd.Flags().Changed("sqlite") {
		p, _ := cmd.Flags().GetString("sqlite")
		a.cfg.Set(config.KeyOutputSQLite, p)
	}
	if cmd.Flags().Changed("metrics-file") {
		p, _ := cmd.Flags().GetString("metrics-file")
		a.cfg.Set(config.KeyMetricsFile, p)
	}

	solver, err := a.cfg.Solver()
	if err != nil {
		return runOptions{}, nil, err
	}
	ro := runOptions{}
	if a.cfg.MetricsFile() != "" {
		ro.recorder = telemetry.NewRecorder()
	}
	ro.options = []experiment.Option{
		experiment.WithLogger(a.logger),
		experiment.WithRecorder(ro.recorder),
		experiment.WithAnalyzer(spectral.NewAnalyzer(spectral.WithSolver(solver))),
		experiment.WithSinks(store.NewCSVSink(a.cfg.OutputDir())),
	}
	cleanup := func() {}
	if path := a.cfg.SQLitePath(); path != "" {
		db, err := store.OpenSQLite(path)
		if err != nil {
			return runOptions{}, nil, err
		}
		ro.options = append(ro.options, experiment.WithSinks(db))
		cleanup = func() {
			if err := db.Close(); err != nil {
				a.logger.Error().Err(err).Msg("close sqlite")
			}
		}
	}

	return ro, cleanup, nil
}

func printReport(cmd *cobra.Command, rep *experiment.Report) {
	s := experiment.Summarize(rep.Info, rep.Curves())
	firstStep := 0.0
	if n := len(s.TSS); n > 1 {
		firstStep = s.TSS[1]
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s/%s: %d samples, %d failed, max steps %d, mean TSS after first step %.4f\n",
		rep.Info.Name, rep.Info.Kind, len(rep.Results), rep.Failures, max(len(s.TSS)-1, 0), firstStep)
	for _, res := range rep.Results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "  sample %d (seed %d): %v\n", res.Index, res.Seed, res.Err)
		}
	}
}
