// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: pure spectral similarity functions.

package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BulkFraction is the share of the spectral sum the bulk must exceed.
const BulkFraction = 0.95

// BulkIndex returns the length of the shortest prefix of spectrum whose
// running sum is strictly greater than BulkFraction·sum(spectrum), or
// len(spectrum) if no prefix qualifies.
//
// Examples: [] → 0, [0,0] → 2, [2,0] → 1, [19,1] → 2.
func BulkIndex(spectrum []float64) int {
	cutOff := BulkFraction * floats.Sum(spectrum)
	var running float64
	for i, v := range spectrum {
		running += v
		if running > cutOff {
			return i + 1
		}
	}

	return len(spectrum)
}

// RSS is the reduced spectral similarity of perturbed against target over
// the first bulk eigenvalues. bulk is clamped to the shorter spectrum.
func RSS(perturbed, target []float64, bulk int) float64 {
	b := clampBulk(bulk, len(perturbed), len(target))
	reducedTarget := target[:b]
	denom := floats.Norm(reducedTarget, 2)
	if denom <= 0 {
		return 0
	}
	diff := make([]float64, b)
	floats.SubTo(diff, perturbed[:b], reducedTarget)

	return 1 - floats.Norm(diff, 2)/denom
}

// ISD is the irreconcilable spectral difference: the share of the target
// spectrum's norm lying outside its first bulk eigenvalues.
func ISD(target []float64, bulk int) float64 {
	total := floats.Norm(target, 2)
	if total <= 0 {
		return 0
	}
	b := clampBulk(bulk, len(target), len(target))

	return 1 - floats.Norm(target[:b], 2)/total
}

// TSS combines ISD and RSS into the total spectral similarity.
func TSS(isd, rss float64) float64 { return (1 - isd) * rss }

func clampBulk(b, n1, n2 int) int {
	if b < 0 {
		return 0
	}
	if b > n1 {
		b = n1
	}
	if b > n2 {
		b = n2
	}

	return b
}

// NormalizedEntropy returns the Shannon entropy of a probability vector
// divided by its maximum, log(len(c)). Zero entries contribute 0. Vectors
// with fewer than two entries yield 0.
func NormalizedEntropy(c []float64) float64 {
	if len(c) < 2 {
		return 0
	}

	return stat.Entropy(c) / math.Log(float64(len(c)))
}

// KLFromUniform returns the Kullback–Leibler divergence, in bits, of c from
// the uniform distribution over len(c) outcomes.
func KLFromUniform(c []float64) float64 {
	if len(c) == 0 {
		return 0
	}
	uniform := make([]float64, len(c))
	floats.AddConst(1/float64(len(c)), uniform)

	return stat.KullbackLeibler(c, uniform) / math.Ln2
}
