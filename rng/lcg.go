// SPDX-License-Identifier: MIT

// Package rng provides a seeded linear congruential generator.
//
// The generator uses the GCC constants (m = 2^31, a = 1103515245,
// c = 12345), so a given seed always reproduces the same stream on every
// platform. That is what network initialization needs for reproducible
// training runs; it is not a statistical-quality source.
//
// LCG implements math/rand.Source, so it can also back a *rand.Rand:
//
//	r := rand.New(rng.NewLCG(7))
package rng

import "math/rand"

// Generator constants.
const (
	Modulus    = 1 << 31
	Multiplier = 1103515245
	Increment  = 12345
)

// LCG is a deterministic linear congruential generator. The zero value is
// a valid generator seeded with 0. Not safe for concurrent use.
type LCG struct {
	seed  uint64
	state uint64
}

var _ rand.Source = (*LCG)(nil)

// NewLCG returns a generator positioned at the start of the stream for seed.
// Negative seeds are folded into [0, Modulus).
func NewLCG(seed int64) *LCG {
	g := &LCG{}
	g.Seed(seed)

	return g
}

// Seed re-seeds the generator and rewinds it.
func (g *LCG) Seed(seed int64) {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	g.seed = uint64(s)
	g.state = g.seed
}

// Reset rewinds the generator to its seed.
func (g *LCG) Reset() { g.state = g.seed }

// Next advances the state and returns it, in [0, Modulus).
func (g *LCG) Next() uint32 {
	g.state = (Multiplier*g.state + Increment) % Modulus

	return uint32(g.state)
}

// Float64 returns the next value scaled into [0, 1).
func (g *LCG) Float64() float64 {
	return float64(g.Next()) / Modulus
}

// Int63 combines two draws into a non-negative int64 (31+31 bits).
func (g *LCG) Int63() int64 {
	hi := int64(g.Next())

	return hi<<31 | int64(g.Next())
}

// Intn returns a value in [0, n) by scaling one draw. Panics if n <= 0,
// as math/rand does.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn: n must be positive")
	}

	return int(float64(n) * g.Float64())
}
