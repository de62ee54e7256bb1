// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2, otherwise ErrTooFewVertices.
//   - Labels cfg.idFn(0..n-1); edges i–(i+1).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(lg, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(lg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
