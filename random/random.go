// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package random supplies the randomness the engine consumes: a
// uniform integer draw, a Bernoulli draw, and a uniform permutation.
// All non-determinism in the module flows through a Source, so a
// seeded Source makes every randomized operation reproducible.
package random

import "math/rand"

// A Source wraps a seeded generator behind the three draws the
// engine needs.  It is not safe for concurrent use; give each
// goroutine its own.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Int returns a uniform integer in [0, n).
func (s *Source) Int(n int) int { return s.r.Intn(n) }

// P returns true with probability p.
func (s *Source) P(p float64) bool { return s.r.Float64() < p }

// Permutation returns a uniform permutation of {0..n-1}.
func (s *Source) Permutation(n int) []int { return s.r.Perm(n) }
