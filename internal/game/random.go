package game

import "math/rand"

// Random is the uniform integer source every simulation component draws from.
// It is not safe for concurrent use; the simulation is single-threaded.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- gameplay only
}

// Range returns a value in [min, max] inclusive. If max <= min it returns min.
func (r *Random) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Chance returns true with probability n/outOf.
func (r *Random) Chance(n, outOf int) bool {
	if outOf <= 0 {
		return false
	}
	return r.rng.Intn(outOf) < n
}

// Int63 exposes the underlying stream for seeding child generators.
func (r *Random) Int63() int64 { return r.rng.Int63() }
