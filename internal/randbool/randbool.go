// Package randbool provides the uniform random boolean source the dispatch
// packages' entity factories draw from.
//
// The source is an explicit handle rather than package-level state: every
// factory receives the Source it should consume, so workloads can be made
// reproducible by seeding and no hidden global ordering leaks between
// benchmarks.
package randbool

import "math/rand/v2"

// Source produces uniformly distributed, independent boolean draws.
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded from the process-wide generator.
func New() *Source {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded creates a Source with a fixed PCG seed.
// Two Sources built from the same seeds yield identical streams.
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Bool returns one unbiased draw.
// PCG output is uniform across all bits, so the low bit suffices.
func (s *Source) Bool() bool {
	return s.rng.Uint64()&1 == 1
}
