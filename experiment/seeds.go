// SPDX-License-Identifier: MIT

package experiment

import "math/rand"

// MaxSeed bounds generated seeds: they are drawn from [0, MaxSeed).
const MaxSeed = 10_000_000

// GenerateSeeds draws n seeds from rng.
func GenerateSeeds(rng *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(MaxSeed)
	}

	return out
}
