// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_hypercube.go - implementation of Hypercube(d).
//
// Contract:
//   - d ≥ 1, otherwise ErrTooFewVertices; d ≤ MaxHypercubeDim.
//   - Node i (0 ≤ i < 2^d) is labeled by its d-bit binary string, MSB first.
//   - Edge i–(i XOR 2^k) for every bit k where i has a 0.
//
// Complexity: O(2^d) nodes + O(d·2^(d-1)) edges.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	methodHypercube = "Hypercube"
	minHypercubeDim = 1
	// MaxHypercubeDim bounds 2^d nodes to keep dense spectra tractable.
	MaxHypercubeDim = 16
)

// Hypercube returns a Constructor that builds Q_d.
func Hypercube(d int) Constructor {
	return func(lg *coreLabeled, _ builderConfig) error {
		if d < minHypercubeDim {
			return fmt.Errorf("%s: d=%d < min=%d: %w", methodHypercube, d, minHypercubeDim, ErrTooFewVertices)
		}
		if d > MaxHypercubeDim {
			return fmt.Errorf("%s: d=%d > max=%d: %w", methodHypercube, d, MaxHypercubeDim, ErrConstructFailed)
		}
		n := 1 << d
		for i := 0; i < n; i++ {
			if err := lg.AddNode(bitLabel(i, d)); err != nil {
				return fmt.Errorf("%s: AddNode: %w", methodHypercube, err)
			}
		}
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				j := i ^ (1 << k)
				if j < i {
					continue
				}
				if err := addEdge(lg, methodHypercube, bitLabel(i, d), bitLabel(j, d)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bitLabel renders i as a zero-padded binary string of width d.
func bitLabel(i, d int) string {
	s := strconv.FormatInt(int64(i), 2)
	if len(s) < d {
		s = strings.Repeat("0", d-len(s)) + s
	}

	return s
}
