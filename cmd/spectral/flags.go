// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/perturb"
	"github.com/spf13/cobra"
)

// addFamilyFlags registers --family and --param.
func addFamilyFlags(cmd *cobra.Command) {
	cmd.Flags().String("family", "", "Graph family: complete, complete_bipartite, star, path, cycle, hyper_cube, random_binomial, wheel")
	cmd.Flags().StringToString("param", nil, "Family parameter key=value (num_nodes, num_nodes_C1, num_nodes_C2, num_leaves, cube_degree, edge_prob, num_spokes)")
	_ = cmd.MarkFlagRequired("family")
}

func specFromFlags(cmd *cobra.Command) (builder.Spec, error) {
	family, _ := cmd.Flags().GetString("family")
	kv, err := cmd.Flags().GetStringToString("param")
	if err != nil {
		return nil, err
	}
	params, err := builder.ParamsFromMap(kv)
	if err != nil {
		return nil, err
	}

	return builder.Resolve(family, params)
}

// kindsFromFlag parses --kind; "both" (the default) runs node then edge.
func kindsFromFlag(cmd *cobra.Command) ([]perturb.Kind, error) {
	s, _ := cmd.Flags().GetString("kind")
	if s == "" || s == "both" {
		return []perturb.Kind{perturb.Node, perturb.Edge}, nil
	}
	k, err := perturb.ParseKind(s)
	if err != nil {
		return nil, fmt.Errorf("--kind: %w", err)
	}

	return []perturb.Kind{k}, nil
}
