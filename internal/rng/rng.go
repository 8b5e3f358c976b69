// Package rng centralizes deterministic random generation for the layout
// engine and the graph generators that feed it.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independent streams: callers that need more than one random process from
//     a single seed (e.g. edge sampling and initial-position sampling) derive
//     separate, uncorrelated sub-streams instead of sharing one *rand.Rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive one stream per goroutine instead.
package rng

import "math/rand"

// defaultSeed is used whenever a caller asks for a nondeterministic source but
// none is available in context (tests, reproducibility harnesses). It is
// arbitrary but stable.
const defaultSeed int64 = 1

// Stream identifiers for the two independent processes the core needs.
// Keeping them as named constants (rather than inline literals at call
// sites) avoids accidental collisions if a third stream is added later.
const (
	StreamGraphSampling uint64 = iota + 1
	StreamInitialPosition
)

// New returns a deterministic *rand.Rand seeded directly from seed.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Derive mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style avalanche finalizer, then returns an RNG seeded
// from it. This lets two collaborators (e.g. graph.ErdosRenyi and
// layout.Engine.Initialize) share one caller-provided seed while drawing from
// statistically independent streams.
//
// Constants are the canonical SplitMix64 multipliers/finalizer; see Vigna
// (2014). Small changes in inputs produce large, well-distributed output
// changes, so StreamGraphSampling and StreamInitialPosition never correlate.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) *rand.Rand {
	return New(deriveSeed(parent, stream))
}

// deriveSeed applies the SplitMix64 finalizer to (parent, stream).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// SeedOrDefault resolves a caller-facing "seed, or nondeterministic" policy
// into a concrete seed: a zero seed asks for nondeterministic behavior, which
// this package resolves to a time-derived seed so the caller still gets an
// RNG; any nonzero seed is used verbatim.
//
// now is injected so this stays testable and so the package does not reach
// for time.Now() internally (the core must not read ambient system state on
// its own, per the engine's determinism contract; only this helper, used by
// non-core callers such as cmd/frlayout, does).
func SeedOrDefault(seed int64, now func() int64) int64 {
	if seed != 0 {
		return seed
	}
	if now == nil {
		return defaultSeed
	}
	return now()
}
