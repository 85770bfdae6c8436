// Package rng is the single randomness source shared by every consumer of
// random bits in algokit: skip-list level sampling, the graph generators in
// pkg/graphgen, and the random key/int helpers translated from
// original_source/utils/randint.c and randkeyval.c.
//
// The source seeds its one process-global RNG from the wall clock exactly
// once at startup (§5: "the process RNG, seeded from the wall clock once
// per program ... the design must ensure the RNG seeding is a distinct
// configuration knob exposed at startup"). [Seed] is that knob: call it
// before any other algokit entry point to get reproducible runs; if it is
// never called, [Shared] lazily seeds itself from the wall clock on first
// use.
package rng

import (
	"math/rand/v2"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	source *rand.Rand
	seeded bool
)

// Seed pins the shared RNG to a deterministic seed. Must be called, if at
// all, before the first call to [Shared] or any algokit entry point that
// consumes randomness; reseeding a live generator is not supported, mirroring
// the source's single startup-time seed.
func Seed(seed uint64) {
	mu.Lock()
	defer mu.Unlock()

	source = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seeded = true
}

// Shared returns the process-wide RNG, seeding it from the wall clock on
// first use if [Seed] was never called.
func Shared() *rand.Rand {
	mu.Lock()
	defer mu.Unlock()

	if !seeded {
		now := uint64(time.Now().UnixNano())
		source = rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
		seeded = true
	}
	return source
}

// RandomInt returns a uniform random integer in [lo, hi), translated from
// original_source/utils/randint.c.
func RandomInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + Shared().IntN(hi-lo)
}

// RandomKey fills and returns an n-byte slice of printable ASCII bytes,
// translated from original_source/utils/randkeyval.c, which the original
// graph/container benchmarks use to synthesize string keys.
func RandomKey(n int) []byte {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	buf := make([]byte, n)
	r := Shared()
	for i := range buf {
		buf[i] = alphabet[r.IntN(len(alphabet))]
	}
	return buf
}

// Bernoulli reports true with probability p, used by the skip list to
// decide whether a node is promoted to the next level.
func Bernoulli(p float64) bool {
	return Shared().Float64() < p
}
