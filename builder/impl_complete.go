// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 2, otherwise ErrTooFewVertices.
//   - Labels cfg.idFn(0..n-1); edges (i,j) for i<j in lexicographic order.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(lg, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(lg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
