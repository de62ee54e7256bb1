// SPDX-License-Identifier: MIT
// File: grid.go
// Role: sweeps over a config.Grid.

package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spectral/config"
)

// RunGrid runs every (entry, kind) pair of grid in file order. Sample count
// and base seed come from the grid; Workers and Seeds come from cfg. An
// experiment that fails to start is recorded and the sweep moves on; only
// context cancellation stops it early.
func RunGrid(ctx context.Context, grid *config.Grid, cfg Config, opts ...Option) ([]*Report, error) {
	var (
		reports []*Report
		errs    []error
	)
	for i, entry := range grid.Experiments {
		spec, err := entry.Spec()
		if err != nil {
			errs = append(errs, fmt.Errorf("experiments[%d]: %w", i, err))
			continue
		}
		kinds, err := entry.PerturbationKinds()
		if err != nil {
			errs = append(errs, fmt.Errorf("experiments[%d]: %w", i, err))
			continue
		}
		for _, kind := range kinds {
			if err := ctx.Err(); err != nil {
				return reports, errors.Join(append(errs, err)...)
			}
			c := cfg
			c.Samples = grid.SamplesFor(entry)
			c.BaseSeed = grid.Seed
			rep, err := Run(ctx, spec, kind, c, opts...)
			if rep != nil {
				reports = append(reports, rep)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("experiments[%d] %s/%s: %w", i, spec.Name(), kind, err))
			}
		}
	}

	return reports, errors.Join(errs...)
}
