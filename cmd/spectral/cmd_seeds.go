// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/spectral/experiment"
	"github.com/katalvlaran/spectral/store"
	"github.com/spf13/cobra"
)

func newSeedsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Write a file of random seeds for reproducible runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			out, _ := cmd.Flags().GetString("out")
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			src := time.Now().UnixNano()
			if cmd.Flags().Changed("seed") {
				src, _ = cmd.Flags().GetInt64("seed")
			}
			seeds := experiment.GenerateSeeds(rand.New(rand.NewSource(src)), count)
			if err := store.WriteSeeds(out, seeds); err != nil {
				return err
			}
			a.logger.Info().Int("count", count).Str("file", out).Msg("seeds written")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d seeds to %s\n", count, out)
			return nil
		},
	}

	cmd.Flags().Int("count", 10, "Number of seeds")
	cmd.Flags().String("out", "seeds.csv", "Output file")
	cmd.Flags().Int64("seed", 0, "Seed of the generator (default: current time)")

	return cmd
}
