// SPDX-License-Identifier: MIT
// Package mutator - deterministic, index-addressed randomness.
//
// Goals:
//   - Determinism: same (seed, index, stream) ⇒ same value on every platform.
//   - Random access: no sequential RNG state, so point n can be computed alone.
//   - No allocations in hot paths.

package mutator

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// golden is the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

// mix64 applies the SplitMix64 finalizer; small input changes avalanche
// across all output bits.
func mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed.
func deriveSeed(parent int64, stream uint64) uint64 {
	if parent == 0 {
		parent = defaultSeed
	}
	return mix64(uint64(parent) ^ (stream + golden) + golden)
}

// unitFloat returns a uniform value in [0,1) for (seed, index, stream).
func unitFloat(seed int64, index int, stream uint64) float64 {
	x := mix64(deriveSeed(seed, stream) + uint64(index)*golden)
	return float64(x>>11) / (1 << 53)
}
