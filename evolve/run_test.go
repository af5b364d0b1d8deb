// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package evolve

import (
	"strings"
	"testing"

	"github.com/ValdinePegy/PuzzleEngine/puzzle"
	"github.com/ValdinePegy/PuzzleEngine/random"
)

// An easy, singles-solvable puzzle keeps the fitness evaluations in
// these tests cheap.
const seedPuzzle = `
 5 3 -  - 7 -  - - -
 6 - -  1 9 5  - - -
 - 9 8  - - -  - 6 -

 8 - -  - 6 -  - - 3
 4 - -  8 - 3  - - 1
 7 - -  - 2 -  - - 6

 - 6 -  - - -  2 8 -
 - - -  4 1 9  - - 5
 - - -  - 8 -  - 7 9
`

func loadSeed(t *testing.T) *puzzle.Sudoku {
	t.Helper()
	puz := puzzle.New()
	if err := puz.Load(strings.NewReader(seedPuzzle)); err != nil {
		t.Fatalf("couldn't load seed puzzle: %v", err)
	}
	return puz
}

func TestRunFitnessMonotone(t *testing.T) {
	cfg := Config{
		PopSize:        20,
		Generations:    25,
		MutationRate:   0.015,
		TournamentSize: 2,
		Elites:         1,
		Seed:           3,
	}
	result := Run(loadSeed(t), cfg, random.New(cfg.Seed), nil)
	if result.Generations != cfg.Generations {
		t.Fatalf("ran %d generations, want %d", result.Generations, cfg.Generations)
	}
	if len(result.History) != cfg.Generations {
		t.Fatalf("history has %d entries, want %d", len(result.History), cfg.Generations)
	}
	// With one protected elite, the reported fitness never gets
	// worse from one generation to the next.
	for g := 1; g < len(result.History); g++ {
		if result.History[g] > result.History[g-1] {
			t.Fatalf("fitness rose from %g to %g at generation %d",
				result.History[g-1], result.History[g], g)
		}
	}
	if result.BestFitness > result.History[0] {
		t.Error("final best is worse than the starting fitness")
	}
}

func TestRunStopsAtTarget(t *testing.T) {
	cfg := Config{
		PopSize:        10,
		Generations:    50,
		MutationRate:   0.015,
		TournamentSize: 2,
		Elites:         1,
		TargetFitness:  1000, // any fitness qualifies immediately
		Seed:           5,
	}
	result := Run(loadSeed(t), cfg, random.New(cfg.Seed), nil)
	if result.Generations != 1 {
		t.Errorf("ran %d generations, want 1", result.Generations)
	}
}

func TestRunProgressCallback(t *testing.T) {
	cfg := Config{
		PopSize:        5,
		Generations:    3,
		MutationRate:   0.1,
		TournamentSize: 2,
		Elites:         1,
		Seed:           9,
	}
	var gens []int
	Run(loadSeed(t), cfg, random.New(cfg.Seed), func(gen int, best float64) {
		gens = append(gens, gen)
	})
	if len(gens) != 3 || gens[0] != 0 || gens[2] != 2 {
		t.Errorf("progress generations = %v", gens)
	}
}
