// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package evolve provides a generational population container and
// the selection-driven search that breeds puzzles toward a target
// difficulty.  Fitness is minimised throughout: a lower score is a
// better organism.
package evolve

import (
	"sort"

	"github.com/ValdinePegy/PuzzleEngine/random"
)

// A FitnessFunc scores an organism.  Lower is better.
type FitnessFunc[T any] func(*T) float64

/*

Populations

A Population holds the current generation and accumulates the next
one.  The selection operators append to the next generation;
Update commits it.  Organisms are plain values, so inserting or
selecting copies them and individuals never share state.

*/

// A Population is a generational container of organisms.
type Population[T any] struct {
	orgs []T // current generation
	next []T // next generation under construction
}

// Insert adds n copies of an organism to the current generation.
func (p *Population[T]) Insert(org T, n int) {
	for i := 0; i < n; i++ {
		p.orgs = append(p.orgs, org)
	}
}

// Size returns the number of organisms in the current generation.
func (p *Population[T]) Size() int { return len(p.orgs) }

// At returns a mutable reference to the i'th organism.
func (p *Population[T]) At(i int) *T { return &p.orgs[i] }

// Clear drops both generations.
func (p *Population[T]) Clear() {
	p.orgs, p.next = nil, nil
}

// Update commits the accumulated next generation, discarding the
// current one.
func (p *Population[T]) Update() {
	p.orgs, p.next = p.next, nil
}

// scorer memoizes a fitness function by organism index, so one
// selection round never scores the same organism twice.
func (p *Population[T]) scorer(fit FitnessFunc[T]) func(int) float64 {
	scores := make([]float64, len(p.orgs))
	scored := make([]bool, len(p.orgs))
	return func(i int) float64 {
		if !scored[i] {
			scores[i] = fit(&p.orgs[i])
			scored[i] = true
		}
		return scores[i]
	}
}

// EliteSelect copies the numElites best organisms, numCopies times
// each, into the next generation.  Ties keep the earlier index, so
// with one elite and one copy the single best organism survives
// unchanged.
func (p *Population[T]) EliteSelect(fit FitnessFunc[T], numCopies, numElites int) {
	score := p.scorer(fit)
	order := make([]int, len(p.orgs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return score(order[a]) < score(order[b])
	})
	if numElites > len(order) {
		numElites = len(order)
	}
	for _, i := range order[:numElites] {
		for c := 0; c < numCopies; c++ {
			p.next = append(p.next, p.orgs[i])
		}
	}
}

// TournamentSelect fills numWinners slots of the next generation.
// Each slot draws tournamentSize organisms at random and copies the
// fittest of the draw; ties keep the earliest draw.
func (p *Population[T]) TournamentSelect(fit FitnessFunc[T], tournamentSize int, rng *random.Source, numWinners int) {
	score := p.scorer(fit)
	for w := 0; w < numWinners; w++ {
		best := rng.Int(len(p.orgs))
		for t := 1; t < tournamentSize; t++ {
			challenger := rng.Int(len(p.orgs))
			if score(challenger) < score(best) {
				best = challenger
			}
		}
		p.next = append(p.next, p.orgs[best])
	}
}
