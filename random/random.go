// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the deterministic generator used for weight
// initialisation and shuffling.
//
// Example:
//
//	rng := random.New(42)
//	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
//	random.Shuffle(rng, xs)
package random

import (
	"github.com/born-ml/ffnet/internal/random"
)

// Generator is a 128-bit xorshift generator, safe for concurrent use.
type Generator = random.Generator

// New creates a generator with an explicit seed.
func New(seed uint64) *Generator {
	return random.New(seed)
}

// NewFromTime creates a generator seeded from the wall clock.
func NewFromTime() *Generator {
	return random.NewFromTime()
}

// Default returns the process-wide generator, time-seeded on first use.
func Default() *Generator {
	return random.Default()
}

// Shuffle permutes s in place using g and returns it.
func Shuffle[T any](g *Generator, s []T) []T {
	return random.Shuffle(g, s)
}
