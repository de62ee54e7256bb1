// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Contract:
//   - n ≥ 4 total nodes, otherwise ErrTooFewVertices.
//   - Hub CenterNodeID first, then rim cfg.idFn(1..n-1) as a cycle C_{n-1},
//     then spokes Center–rim in rim order.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n with n nodes in total.
func Wheel(n int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := lg.AddNode(CenterNodeID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodWheel, CenterNodeID, err)
		}
		rim := n - 1
		for i := 1; i <= rim; i++ {
			next := i%rim + 1
			if err := addEdge(lg, methodWheel, cfg.idFn(i), cfg.idFn(next)); err != nil {
				return err
			}
		}
		for i := 1; i <= rim; i++ {
			if err := addEdge(lg, methodWheel, CenterNodeID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
