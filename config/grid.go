// SPDX-License-Identifier: MIT
// File: grid.go
// Role: YAML description of a batch of experiments.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/perturb"
	"gopkg.in/yaml.v3"
)

// ErrInvalidGrid is returned by Validate for structurally bad grids.
var ErrInvalidGrid = errors.New("config: invalid experiment grid")

// Grid is a list of experiments sharing sample count and seed defaults.
//
//	samples: 10
//	seed: 42
//	experiments:
//	  - family: complete
//	    params: {num_nodes: 10}
//	    kinds: [node, edge]
//	  - family: random_binomial
//	    params: {num_nodes: 50, edge_prob: 0.3}
//	    kinds: [edge]
//	    samples: 25
type Grid struct {
	Samples     int         `yaml:"samples"`
	Seed        int64       `yaml:"seed"`
	Experiments []GridEntry `yaml:"experiments"`
}

// GridEntry is one family instance and the perturbation kinds to run on it.
type GridEntry struct {
	Family  string         `yaml:"family"`
	Params  builder.Params `yaml:"params"`
	Kinds   []string       `yaml:"kinds"`
	Samples int            `yaml:"samples,omitempty"`
}

// LoadGrid reads and validates a grid file.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid file: %w", err)
	}

	return ParseGrid(data)
}

// ParseGrid decodes and validates grid YAML.
func ParseGrid(data []byte) (*Grid, error) {
	var g Grid
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing grid file: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &g, nil
}

// Validate resolves every entry's family and kinds so that errors surface
// before any experiment starts.
func (g *Grid) Validate() error {
	if g.Samples < 0 {
		return fmt.Errorf("samples must be non-negative, got %d: %w", g.Samples, ErrInvalidGrid)
	}
	if len(g.Experiments) == 0 {
		return fmt.Errorf("no experiments: %w", ErrInvalidGrid)
	}
	var errs []error
	for i, e := range g.Experiments {
		if _, err := e.Spec(); err != nil {
			errs = append(errs, fmt.Errorf("experiments[%d]: %w", i, err))
		}
		if _, err := e.PerturbationKinds(); err != nil {
			errs = append(errs, fmt.Errorf("experiments[%d]: %w", i, err))
		}
		if e.Samples < 0 {
			errs = append(errs, fmt.Errorf("experiments[%d]: negative samples: %w", i, ErrInvalidGrid))
		}
	}

	return errors.Join(errs...)
}

// SamplesFor returns the entry's sample count, falling back to the grid's.
func (g *Grid) SamplesFor(e GridEntry) int {
	if e.Samples > 0 {
		return e.Samples
	}
	return g.Samples
}

// Spec resolves the entry's family and parameters.
func (e GridEntry) Spec() (builder.Spec, error) {
	return builder.Resolve(e.Family, e.Params)
}

// PerturbationKinds parses Kinds; an empty list means both kinds.
func (e GridEntry) PerturbationKinds() ([]perturb.Kind, error) {
	if len(e.Kinds) == 0 {
		return []perturb.Kind{perturb.Node, perturb.Edge}, nil
	}
	out := make([]perturb.Kind, 0, len(e.Kinds))
	for _, s := range e.Kinds {
		k, err := perturb.ParseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}
