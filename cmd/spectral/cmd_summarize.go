// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/store"
	"github.com/spf13/cobra"
)

func newSummarizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Average stored RSS, ISD and TSS curves per step",
		Long: `summarize reads the samples stored for one experiment and prints the mean
of each metric per step. Samples that degenerated early are padded with 0
(RSS, TSS) or 1 (ISD). The fraction column is the step divided by the
expected number of nodes (or edges) of the family.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specFromFlags(cmd)
			if err != nil {
				return err
			}
			kinds, err := kindsFromFlag(cmd)
			if err != nil {
				return err
			}
			dbPath, _ := cmd.Flags().GetString("sqlite")
			jsonOut, _ := cmd.Flags().GetBool("json")

			var db *store.SQLiteSink
			if dbPath != "" {
				if db, err = store.OpenSQLite(dbPath); err != nil {
					return err
				}
				defer db.Close()
			}

			var summaries []experiment.Summary
			for _, kind := range kinds {
				info := experiment.InfoFor(spec, kind)
				var curves experiment.Curves
				if db != nil {
					curves, err = db.Curves(cmd.Context(), info)
				} else {
					curves, err = store.LoadCurves(a.cfg.OutputDir(), info)
				}
				if err != nil {
					return fmt.Errorf("load %s/%s: %w", info.Name, kind, err)
				}
				summaries = append(summaries, experiment.Summarize(info, curves))
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			for _, s := range summaries {
				printSummary(cmd, s)
			}
			return nil
		},
	}

	addFamilyFlags(cmd)
	cmd.Flags().String("kind", "both", "Perturbation kind: node, edge or both")
	cmd.Flags().String("sqlite", "", "Read from this SQLite database instead of the CSV tree")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

func printSummary(cmd *cobra.Command, s experiment.Summary) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s/%s (%d samples)\n", s.Name, s.Kind, s.Samples)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "step\tfraction\trss\tisd\ttss\t")
	for i := range s.Axis {
		fmt.Fprintf(w, "%d\t%.4f\t%.6f\t%.6f\t%.6f\t\n", i, s.Axis[i], s.RSS[i], at(s.ISD, i, experiment.PadISD), at(s.TSS, i, experiment.PadTSS))
	}
	w.Flush()
}

func at(s []float64, i int, pad float64) float64 {
	if i < len(s) {
		return s[i]
	}
	return pad
}
