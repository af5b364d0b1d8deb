// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package evolve

import (
	"github.com/ValdinePegy/PuzzleEngine/puzzle"
	"github.com/ValdinePegy/PuzzleEngine/random"
)

/*

The generational driver

Each generation mutates the reveal masks of every non-elite
individual, carries the best individuals forward unchanged, and
fills the remaining slots by tournament.  Because the elite of
generation g is the best of generation g-1's whole population, the
fitness reported for slot 0 never increases across a run.

*/

// A Result summarizes a finished run.
type Result struct {
	Generations int       // generations actually executed
	Best        puzzle.Sudoku
	BestFitness float64
	History     []float64 // fitness of slot 0 per generation
}

// Run breeds the seed puzzle for up to cfg.Generations generations
// and returns the best individual found.  The progress callback, if
// non-nil, is invoked once per generation with the fitness of slot
// 0, the elite carried over from the previous generation (the seed
// itself in generation 0).  The callback cannot stop the run; only
// a positive cfg.TargetFitness ends it early.
func Run(seed *puzzle.Sudoku, cfg Config, rng *random.Source, progress func(gen int, best float64)) *Result {
	pop := &Population[puzzle.Sudoku]{}
	pop.Insert(*seed, cfg.PopSize)
	fit := func(s *puzzle.Sudoku) float64 { return s.CalcFitness() }

	result := &Result{}
	for gen := 0; gen < cfg.Generations; gen++ {
		// Mutate everything but the elite slots.
		for i := cfg.Elites; i < pop.Size(); i++ {
			pop.At(i).MutateStart(rng, cfg.MutationRate)
		}

		pop.EliteSelect(fit, 1, cfg.Elites)
		pop.TournamentSelect(fit, cfg.TournamentSize, rng, cfg.PopSize-cfg.Elites)

		best := pop.At(0).CalcFitness()
		result.History = append(result.History, best)
		if progress != nil {
			progress(gen, best)
		}

		pop.Update()
		result.Generations = gen + 1
		if cfg.TargetFitness > 0 && best <= cfg.TargetFitness {
			break
		}
	}

	result.Best = *pop.At(0)
	result.BestFitness = result.Best.CalcFitness()
	return result
}
