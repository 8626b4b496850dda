// Package random implements the deterministic xorshift generator used for
// weight initialisation and permutation shuffling.
//
// The generator keeps 128 bits of state. Each draw mixes the state with
//
//	c := s
//	s ^= (c & (1<<121 - 1)) << 7
//	s ^= c >> 9
//
// and returns the low 64 bits of the new state. A Generator is safe for
// concurrent use; callers that need a reproducible sequence should own an
// instance created with New.
package random

import (
	"sync"
	"time"
)

// zeroSeed replaces a zero seed. The all-zero state is a fixed point of the
// mixing step and would draw zeros forever.
const zeroSeed = 0x9e3779b97f4a7c15

// Generator is a 128-bit xorshift pseudo-random bit generator.
type Generator struct {
	mu sync.Mutex
	hi uint64
	lo uint64
}

// New creates a generator seeded with seed.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = zeroSeed
	}
	return &Generator{lo: seed}
}

// NewFromTime creates a generator seeded from the wall clock in Unix
// milliseconds. Sequences are not reproducible across runs.
func NewFromTime() *Generator {
	return New(uint64(time.Now().UnixMilli())) //nolint:gosec // clock is never negative here
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the process-wide generator, time-seeded on first use.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = NewFromTime()
	})
	return defaultGen
}

// Uint64 advances the state and returns its low 64 bits.
func (g *Generator) Uint64() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	hi, lo := g.hi, g.lo

	// (c & mask121) << 7 over 128 bits; the mask only drops bits the shift
	// would push out anyway.
	shlHi := (hi&(1<<57-1))<<7 | lo>>57
	shlLo := lo << 7

	// c >> 9
	shrHi := hi >> 9
	shrLo := lo>>9 | hi<<55

	g.hi = hi ^ shlHi ^ shrHi
	g.lo = lo ^ shlLo ^ shrLo
	return g.lo
}

// State returns the current 128-bit state as (high, low) words.
func (g *Generator) State() (hi, lo uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hi, g.lo
}
