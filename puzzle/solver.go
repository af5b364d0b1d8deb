// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package puzzle

import "github.com/ValdinePegy/PuzzleEngine/random"

/*

Brute-force solver

ForceSolve completes a state by depth-first search.  It walks the
board in reading order, locking forced cells as it goes; at the
first cell with a real choice it tries each candidate in turn
against a checkpoint copy of the state.  Recursion is bounded by
the 81 cells, and each level in flight holds one checkpoint, so the
worst case is a small, fixed amount of memory.

The solver mutates its receiver.  Callers that need the original
state afterwards should solve a clone.

*/

// ForceSolve tries to complete the state by brute force, starting
// its scan at the given cell (pass 0 to search the whole board).
// It returns true and leaves the state solved when a completion
// exists; otherwise it returns false with the state at some dead
// end.
func (s *State) ForceSolve(start int) bool {
	// Advance the scan to the next cell with a real choice,
	// locking every forced cell on the way.
	for start < numCells {
		count := s.CountOptions(start)
		if count == 0 && !s.IsSet(start) {
			return false // open cell with no candidates: dead end
		}
		if count > 1 {
			break
		}
		if count == 1 {
			s.Assign(start, s.FirstOption(start))
		}
		start++
	}
	if start == numCells {
		return true
	}

	// Try each candidate of the branch cell against a checkpoint.
	for digit := 0; digit < numDigits; digit++ {
		if !s.HasOption(start, digit) {
			continue
		}
		backup := *s
		s.Assign(start, digit)
		if s.ForceSolve(start + 1) {
			return true
		}
		*s = backup
	}
	return false
}

// randomSolve is ForceSolve with the branch candidates tried in a
// random order.  Run on an empty state it produces a uniform-ish
// random completed grid, which is how RandomizeCells works.
func (s *State) randomSolve(rng *random.Source, start int) bool {
	for start < numCells {
		count := s.CountOptions(start)
		if count == 0 && !s.IsSet(start) {
			return false
		}
		if count > 1 {
			break
		}
		if count == 1 {
			s.Assign(start, s.FirstOption(start))
		}
		start++
	}
	if start == numCells {
		return true
	}

	for _, digit := range rng.Permutation(numDigits) {
		if !s.HasOption(start, digit) {
			continue
		}
		backup := *s
		s.Assign(start, digit)
		if s.randomSolve(rng, start+1) {
			return true
		}
		*s = backup
	}
	return false
}
