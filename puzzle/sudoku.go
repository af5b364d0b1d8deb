// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package puzzle implements a Sudoku analysis engine: a compact
// solving state with a move algebra over it, a family of ranked
// human-style deduction rules, a brute-force completion solver, and
// a puzzle entity that measures how hard an instance is by
// simulating a rule-by-rule solve into a difficulty profile.
//
// Digits are 0..8 internally and only become printable characters
// through a puzzle's symbol alphabet.  Cells are indexed 0..80 in
// reading order.
package puzzle

import "github.com/ValdinePegy/PuzzleEngine/random"

/*

The Sudoku entity

A Sudoku is a fully solved grid plus a reveal mask saying which
cells a solver gets to see.  The starting state implied by the two
is cached and rebuilt on demand; any mutation to the grid or the
mask marks the cache dirty.

*/

// unsolvedPenalty is added to the fitness of puzzles whose profile
// does not finish the board, so any completed solve outranks any
// stuck one.  It is the single knob to retune if a target audience
// wants longer profiles instead.
const unsolvedPenalty = 100

// A Sudoku is one puzzle instance: solution grid, reveal mask, and
// symbol alphabet, with the cached start state and the profile of
// the last simulated solve.
type Sudoku struct {
	cells      [numCells]int  // the full solution, each cell 0..8
	startCells [numCells]bool // which cells are revealed at the start
	symbols    [numDigits]byte

	startState State // cached state implied by cells+startCells
	dirty      bool  // cache must be rebuilt before use

	profile Profile // last computed solve profile
}

// defaultCells is the built-in solved grid used by New.
var defaultCells = [numCells]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8,
	5, 7, 4, 6, 0, 8, 1, 2, 3,
	3, 8, 6, 1, 7, 2, 0, 5, 4,
	8, 2, 0, 7, 3, 6, 4, 1, 5,
	1, 5, 3, 8, 2, 4, 7, 6, 0,
	6, 4, 7, 0, 5, 1, 3, 8, 2,
	7, 0, 1, 5, 8, 3, 2, 4, 6,
	4, 6, 5, 2, 1, 0, 8, 3, 7,
	2, 3, 8, 4, 6, 7, 5, 0, 1,
}

// New returns a puzzle holding the built-in solved grid with the
// digits '1'..'9' and nothing revealed.
func New() *Sudoku {
	s := &Sudoku{cells: defaultCells, dirty: true}
	for i := range s.symbols {
		s.symbols[i] = byte('1' + i)
	}
	return s
}

// NewRandom returns a puzzle with a random solved grid and each
// cell revealed independently with the given probability.
func NewRandom(rng *random.Source, startProb float64) *Sudoku {
	s := New()
	s.RandomizeCells(rng)
	s.RandomizeStart(rng, startProb)
	return s
}

/*

Accessors

*/

// Cell returns the solution digit of a cell.
func (s *Sudoku) Cell(i int) int { return s.cells[i] }

// Start reports whether a cell is revealed at the start.
func (s *Sudoku) Start(i int) bool { return s.startCells[i] }

// CellSymbol returns the printable form of a cell as the solver
// first sees it: its symbol when revealed, a dash otherwise.
func (s *Sudoku) CellSymbol(i int) byte {
	if s.startCells[i] {
		return s.symbols[s.cells[i]]
	}
	return '-'
}

// Cells returns the full solution grid.
func (s *Sudoku) Cells() [numCells]int { return s.cells }

// StartCells returns the reveal mask.
func (s *Sudoku) StartCells() [numCells]bool { return s.startCells }

// Symbols returns the symbol alphabet.
func (s *Sudoku) Symbols() [numDigits]byte { return s.symbols }

// Profile returns the profile of the last CalcProfile call.
func (s *Sudoku) Profile() *Profile { return &s.profile }

// StartState returns a copy of the state implied by the solution
// grid and the reveal mask, rebuilding the cache if a mutation has
// invalidated it.
func (s *Sudoku) StartState() State {
	if s.dirty {
		s.startState.Clear()
		for i, on := range s.startCells {
			if on {
				s.startState.Assign(i, s.cells[i])
			}
		}
		s.dirty = false
	}
	return s.startState
}

/*

Mutation

*/

// SetStart reveals or hides a single cell.
func (s *Sudoku) SetStart(i int, revealed bool) {
	s.dirty = true
	s.startCells[i] = revealed
}

// MutateStart flips each cell's reveal bit independently with the
// given probability.
func (s *Sudoku) MutateStart(rng *random.Source, toggleP float64) {
	s.dirty = true
	for i := range s.startCells {
		if rng.P(toggleP) {
			s.startCells[i] = !s.startCells[i]
		}
	}
}

// RandomizeStart redraws the whole reveal mask, revealing each cell
// with the given probability.
func (s *Sudoku) RandomizeStart(rng *random.Source, startProb float64) {
	s.dirty = true
	for i := range s.startCells {
		s.startCells[i] = rng.P(startProb)
	}
}

// RandomizeCells replaces the solution with a fresh random solved
// grid, produced by brute-force completion of an empty board with
// the branch digits tried in random order.
func (s *Sudoku) RandomizeCells(rng *random.Source) {
	s.dirty = true
	state := NewState()
	state.randomSolve(rng, 0) // an empty board always completes
	for i := 0; i < numCells; i++ {
		s.cells[i] = state.Value(i)
	}
}

// Shuffle applies a semantics-preserving relabeling: remap the
// digits, shuffle the three row bands and the rows within each
// band, then do the same for columns.  The reveal mask moves with
// the cells, so the difficulty of the puzzle is unchanged.
func (s *Sudoku) Shuffle(rng *random.Source) {
	s.dirty = true

	// Remap all digits.
	remap := rng.Permutation(numDigits)
	for i, c := range s.cells {
		s.cells[i] = remap[c]
	}

	// Shuffle rows: a permutation of the bands composed with an
	// independent permutation inside each band.
	rowMap := bandMap(rng)
	var tmpCells [numCells]int
	var tmpStart [numCells]bool
	for r := 0; r < numDigits; r++ {
		for c := 0; c < numDigits; c++ {
			tmpCells[r*numDigits+c] = s.cells[rowMap[r]*numDigits+c]
			tmpStart[r*numDigits+c] = s.startCells[rowMap[r]*numDigits+c]
		}
	}

	// Shuffle columns the same way, on the row-shuffled grid.
	colMap := bandMap(rng)
	for r := 0; r < numDigits; r++ {
		base := r * numDigits
		for c := 0; c < numDigits; c++ {
			s.cells[base+c] = tmpCells[base+colMap[c]]
			s.startCells[base+c] = tmpStart[base+colMap[c]]
		}
	}
}

// bandMap draws one permutation of the three bands and one of the
// three lines within each band, and composes them into a line map.
func bandMap(rng *random.Source) [numDigits]int {
	bands := rng.Permutation(3)
	var m [numDigits]int
	for band := 0; band < 3; band++ {
		inner := rng.Permutation(3)
		for i := 0; i < 3; i++ {
			m[band*3+i] = bands[band]*3 + inner[i]
		}
	}
	return m
}

/*

Profile and fitness

*/

// CalcProfile simulates a solve of the starting state: try the
// rules in ascending level, apply the first non-empty result,
// log it, and restart from the easiest rule; stop when no rule
// fires.  The returned profile belongs to the puzzle and is only
// valid until the next call.
func (s *Sudoku) CalcProfile() *Profile {
	s.profile.Clear()
	state := s.StartState()
	for {
		fired := false
		for _, rule := range Rules {
			moves := rule.Find(&state)
			if len(moves) == 0 {
				continue
			}
			state.ApplyAll(moves)
			s.profile.Add(rule.Level, len(moves))
			fired = true
			break
		}
		if !fired {
			break
		}
	}
	s.profile.SetSolved(state.IsSolved())
	return &s.profile
}

// CalcFitness scores the puzzle for the evolutionary search: the
// profile length, plus a large penalty when the simulated solve
// gets stuck.  Lower is better.
func (s *Sudoku) CalcFitness() float64 {
	p := s.CalcProfile()
	fitness := float64(p.Size())
	if !p.IsSolved() {
		fitness += unsolvedPenalty
	}
	return fitness
}
