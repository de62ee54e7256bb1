// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_star.go - implementation of Star(leaves).
//
// Contract:
//   - leaves ≥ 1, otherwise ErrTooFewVertices.
//   - Hub CenterNodeID is inserted first (canonical id 0), then leaves
//     cfg.idFn(1..leaves), each joined to the hub.
//
// Complexity: O(L) nodes + O(L) edges.

package builder

import "fmt"

const (
	methodStar    = "Star"
	minStarLeaves = 1
	CenterNodeID  = "Center"
)

// Star returns a Constructor that builds S_L: one hub and L leaves.
func Star(leaves int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if leaves < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewVertices)
		}
		if err := lg.AddNode(CenterNodeID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterNodeID, err)
		}
		for i := 1; i <= leaves; i++ {
			if err := addEdge(lg, methodStar, CenterNodeID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
