// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1, otherwise ErrTooFewVertices.
//   - Left labels cfg.leftPrefix+"0".., then right labels cfg.rightPrefix+"0"..
//   - Edges Li–Rj for i asc, j asc.
//
// Complexity: O(n1+n2) nodes + O(n1·n2) edges.

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := lg.AddNode(left[i]); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := lg.AddNode(right[j]); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodCompleteBipartite, right[j], err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(lg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
