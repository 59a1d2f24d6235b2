// Package aco - random source helpers.
//
// Goals:
//   - Reproducibility on demand: NewRand(seed) gives the same stream for the
//     same seed on every platform.
//   - Independent streams: DeriveRand mixes a parent seed with a stream id so
//     that repeated runs (e.g. best-of-N by a caller) do not correlate.
//   - Non-determinism by default: a solve without WithRand/WithSeed draws a
//     time-seeded source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across solves.
package aco

import (
	"math/rand"
	"time"
)

// defaultSeed replaces a zero seed so that NewRand(0) is still a fixed stream.
const defaultSeed int64 = 1

// NewRand returns a deterministic source. Policy: seed == 0 ⇒ defaultSeed.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveRand returns the deterministic source for stream id of a parent seed.
// Different streams of the same parent are decorrelated by deriveSeed.
//
// Complexity: O(1).
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = defaultSeed
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// timeSeeded returns a fresh source seeded from the wall clock.
func timeSeeded() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
