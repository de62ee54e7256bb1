// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// resolve.go - decoding of loosely typed family parameters into a Spec.

package builder

import (
	"fmt"
	"strconv"
)

// Params is the union of every family's parameters, as they appear in
// experiment grid files and on the command line.
type Params struct {
	NumNodes   int      `yaml:"num_nodes,omitempty"`
	NumNodesC1 int      `yaml:"num_nodes_C1,omitempty"`
	NumNodesC2 int      `yaml:"num_nodes_C2,omitempty"`
	NumLeaves  int      `yaml:"num_leaves,omitempty"`
	CubeDegree int      `yaml:"cube_degree,omitempty"`
	EdgeProb   *float64 `yaml:"edge_prob,omitempty"`
	NumSpokes  int      `yaml:"num_spokes,omitempty"`
}

// Resolve picks the Spec for tag from p.
//
// Errors:
//   - ErrInvalidFamily for unknown tags.
//   - ErrMissingParam when a required field is zero (or EdgeProb is nil).
//   - The Validator error of stochastic specs (e.g. ErrInvalidProbability).
//
// Other range checks are left to the constructors.
func Resolve(tag string, p Params) (Spec, error) {
	f, err := ParseFamily(tag)
	if err != nil {
		return nil, err
	}
	missing := func(name string) error {
		return fmt.Errorf("Resolve(%s): %s: %w", tag, name, ErrMissingParam)
	}
	switch f {
	case FamilyComplete:
		if p.NumNodes == 0 {
			return nil, missing("num_nodes")
		}
		return CompleteSpec{Nodes: p.NumNodes}, nil
	case FamilyCompleteBipartite:
		if p.NumNodesC1 == 0 || p.NumNodesC2 == 0 {
			return nil, missing("num_nodes_C1/num_nodes_C2")
		}
		return CompleteBipartiteSpec{Left: p.NumNodesC1, Right: p.NumNodesC2}, nil
	case FamilyStar:
		if p.NumLeaves == 0 {
			return nil, missing("num_leaves")
		}
		return StarSpec{Leaves: p.NumLeaves}, nil
	case FamilyPath:
		if p.NumNodes == 0 {
			return nil, missing("num_nodes")
		}
		return PathSpec{Nodes: p.NumNodes}, nil
	case FamilyCycle:
		if p.NumNodes == 0 {
			return nil, missing("num_nodes")
		}
		return CycleSpec{Nodes: p.NumNodes}, nil
	case FamilyHypercube:
		if p.CubeDegree == 0 {
			return nil, missing("cube_degree")
		}
		return HypercubeSpec{Dim: p.CubeDegree}, nil
	case FamilyRandomBinomial:
		if p.NumNodes == 0 || p.EdgeProb == nil {
			return nil, missing("num_nodes/edge_prob")
		}
		spec := RandomBinomialSpec{Nodes: p.NumNodes, Prob: *p.EdgeProb}
		if err := spec.Validate(); err != nil {
			return nil, err
		}

		return spec, nil
	case FamilyWheel:
		if p.NumSpokes == 0 {
			return nil, missing("num_spokes")
		}
		return WheelSpec{Nodes: p.NumSpokes}, nil
	}

	return nil, fmt.Errorf("Resolve(%q): %w", tag, ErrInvalidFamily)
}

// ParamsFromMap decodes "key=value" style pairs (CLI flags) into Params.
// Unknown keys are rejected with ErrMissingParam.
func ParamsFromMap(kv map[string]string) (Params, error) {
	var p Params
	for k, v := range kv {
		if k == "edge_prob" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Params{}, fmt.Errorf("ParamsFromMap: %s=%q: %w", k, v, err)
			}
			p.EdgeProb = &f
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Params{}, fmt.Errorf("ParamsFromMap: %s=%q: %w", k, v, err)
		}
		switch k {
		case "num_nodes":
			p.NumNodes = n
		case "num_nodes_C1", "num_nodes_c1":
			p.NumNodesC1 = n
		case "num_nodes_C2", "num_nodes_c2":
			p.NumNodesC2 = n
		case "num_leaves":
			p.NumLeaves = n
		case "cube_degree":
			p.CubeDegree = n
		case "num_spokes":
			p.NumSpokes = n
		default:
			return Params{}, fmt.Errorf("ParamsFromMap: unknown key %q: %w", k, ErrMissingParam)
		}
	}

	return p, nil
}
