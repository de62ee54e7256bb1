// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// helpers.go - shared node/edge emitters with uniform error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// coreLabeled shortens constructor signatures.
type coreLabeled = core.LabeledGraph

// addNodes registers cfg.idFn(0..n-1) in order.
func addNodes(lg *coreLabeled, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := lg.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

func addEdge(lg *coreLabeled, method, u, v string) error {
	if err := lg.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}
