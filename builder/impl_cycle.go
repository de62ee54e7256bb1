// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3, otherwise ErrTooFewVertices.
//   - Labels cfg.idFn(0..n-1); edges i–((i+1) mod n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(lg, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(lg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
