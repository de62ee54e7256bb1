// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_random_binomial.go - implementation of RandomBinomial(n, p).
//
// Contract:
//   - n ≥ 2 (ErrTooFewVertices), p ∈ [0,1] (ErrInvalidProbability).
//   - rng required for 0 < p < 1 (ErrNeedRandSource).
//   - Each pair (i,j), i<j, is kept independently with probability p,
//     drawing rng.Float64() < p in lexicographic pair order.
//   - Nodes left with degree 0 are not emitted; the remaining nodes keep
//     ascending index order. Fewer than two remaining ⇒ ErrConstructFailed.
//
// Complexity: O(n²) draws; O(n + m) emission.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

const (
	methodRandomBinomial = "RandomBinomial"
	minBinomialNodes     = 2
	probMin              = 0.0
	probMax              = 1.0
)

func validateBinomial(n int, p float64) error {
	if n < minBinomialNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomBinomial, n, minBinomialNodes, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomBinomial, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// RandomBinomial returns a Constructor that samples G(n,p) and drops
// isolated nodes.
func RandomBinomial(n int, p float64) Constructor {
	return func(lg *coreLabeled, cfg builderConfig) error {
		if err := validateBinomial(n, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomBinomial, ErrNeedRandSource)
		}

		var kept []core.Edge
		degree := make([]int, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					kept = append(kept, core.Edge{U: i, V: j})
					degree[i]++
					degree[j]++
				}
			}
		}

		survivors := 0
		for i := 0; i < n; i++ {
			if degree[i] == 0 {
				continue
			}
			survivors++
			if err := lg.AddNode(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRandomBinomial, cfg.idFn(i), err)
			}
		}
		if survivors < minBinomialNodes {
			return fmt.Errorf("%s: n=%d p=%g left %d connected nodes: %w",
				methodRandomBinomial, n, p, survivors, ErrConstructFailed)
		}
		for _, e := range kept {
			if err := addEdge(lg, methodRandomBinomial, cfg.idFn(e.U), cfg.idFn(e.V)); err != nil {
				return err
			}
		}

		return nil
	}
}
