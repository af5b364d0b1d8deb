// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package puzzle

/*

Human-style deduction rules

Each rule inspects a state and returns the list of safe moves it can
justify, without mutating anything.  Rules are ranked by how hard a
human has to look: the profile loop tries them in ascending order
and restarts from the easiest after any rule fires, so the rank of
the rule that produced each batch of moves is the difficulty record
of the solve.

Rules only emit moves that are consistent with the mask they
inspected, so applying a rule's output to the same state always
succeeds.  Emission order is fixed to keep solve transcripts
reproducible.  The naked-single rule goes by cell index; the
hidden-single and naked-set rules go by region index ascending, then
cell index, then digit bit ascending; the hidden-set rule goes by
region, then digit set (as a mask, ascending), then cell, then
digit.  The overlap rule goes by overlap index, emitting the box
strikes before the line strikes, each by digit, then sibling
overlap, then cell.  The fish rule goes by digit, then size, rows
before columns, then base-line set.

*/

// A RuleFunc inspects a state and returns the moves it justifies.
type RuleFunc func(*State) []Move

// A Rule pairs a difficulty level with its finder.
type Rule struct {
	Level int
	Name  string
	Find  RuleFunc
}

// Rules lists the deduction rules in ascending difficulty order.
// The profile loop walks this table, so registering a future
// technique is just a matter of appending here.
var Rules = []Rule{
	{Level: 0, Name: "last cell state", Find: (*State).LastCellState},
	{Level: 1, Name: "last region state", Find: (*State).LastRegionState},
	{Level: 2, Name: "region overlap", Find: (*State).RegionOverlap},
	{Level: 3, Name: "limited cells", Find: (*State).LimitedCells},
	{Level: 4, Name: "limited states", Find: (*State).LimitedStates},
	{Level: 5, Name: "swordfish", Find: (*State).Swordfish},
}

/*

Level 0: last cell state (naked single)

*/

// LastCellState finds every open cell with a single candidate left
// and locks it.
func (s *State) LastCellState() []Move {
	var moves []Move
	for cell := 0; cell < numCells; cell++ {
		if s.CountOptions(cell) == 1 {
			moves = append(moves, Move{AssignMove, cell, s.FirstOption(cell)})
		}
	}
	return moves
}

/*

Level 1: last region state (hidden single)

*/

// LastRegionState finds digits that have a single possible home in
// some region and locks them there.  The fold below classifies each
// digit of a region as seen-nowhere, seen-once, or seen-in-multiple
// in a single pass over the member masks.
func (s *State) LastRegionState() []Move {
	var moves []Move
	for r := 0; r < numRegions; r++ {
		var optAny, optMulti uint16
		for _, cell := range members[r] {
			optMulti |= s.options[cell] & optAny
			optAny |= s.options[cell]
		}
		optOnce := optAny &^ optMulti
		if optOnce == 0 {
			continue
		}
		for _, cell := range members[r] {
			if unique := s.options[cell] & optOnce; unique != 0 {
				// If several digits are unique here, lock the
				// lowest; the next sweep picks up the rest.
				moves = append(moves, Move{AssignMove, cell, nextOpt[unique]})
			}
		}
	}
	return moves
}

/*

Level 2: region overlap (pointing pairs / box-line reduction)

A digit confined to a single line/box overlap must land inside it,
which strikes the digit from the remainder of the other parent
region.  Confinement is checked both ways: within the line (strike
the rest of the box) and within the box (strike the rest of the
line).

*/

// RegionOverlap finds digits confined to one overlap of a line or
// box and strikes them from the rest of the other parent region.
func (s *State) RegionOverlap() []Move {
	var moves []Move

	// Union of candidates across each overlap's three cells.
	var union [numOverlaps]uint16
	for o := 0; o < numOverlaps; o++ {
		union[o] = s.options[overlaps[o][0]] |
			s.options[overlaps[o][1]] |
			s.options[overlaps[o][2]]
	}

	for o := 0; o < numOverlaps; o++ {
		lineBase := (o / 3) * 3
		lineTriple := [3]int{lineBase, lineBase + 1, lineBase + 2}
		box := overlapParent[o][1] - boxRegion0
		var boxTriple [3]int
		if o < 27 {
			boxTriple = boxOverlaps[box]
		} else {
			boxTriple = boxOverlaps[numDigits+box]
		}

		// Confined within the line: strike the rest of the box.
		confined := union[o]
		for _, other := range lineTriple {
			if other != o {
				confined &^= union[other]
			}
		}
		moves = overlapStrikes(moves, s, confined, boxTriple, o)

		// Confined within the box: strike the rest of the line.
		confined = union[o]
		for _, other := range boxTriple {
			if other != o {
				confined &^= union[other]
			}
		}
		moves = overlapStrikes(moves, s, confined, lineTriple, o)
	}
	return moves
}

// overlapStrikes emits eliminations for every confined digit in the
// sibling overlaps of the given group, skipping the overlap the
// digit is confined to.
func overlapStrikes(moves []Move, s *State, confined uint16, group [3]int, skip int) []Move {
	for confined != 0 {
		digit := nextOpt[confined]
		confined &^= 1 << digit
		for _, o := range group {
			if o == skip {
				continue
			}
			for _, cell := range overlaps[o] {
				if s.HasOption(cell, digit) {
					moves = append(moves, Move{EliminateMove, cell, digit})
				}
			}
		}
	}
	return moves
}

/*

Level 3: limited cells (naked sets)

*/

// LimitedCells finds k cells of a region that share one k-candidate
// mask and strikes those candidates from the region's other cells,
// for k of 2 through 4.
func (s *State) LimitedCells() []Move {
	var moves []Move
	for r := 0; r < numRegions; r++ {
		var done [1 << numDigits]bool
		for _, cell := range members[r] {
			mask := s.options[cell]
			k := optsCount[mask]
			if k < 2 || k > 4 || done[mask] {
				continue
			}
			done[mask] = true
			matches := 0
			for _, other := range members[r] {
				if s.options[other] == mask {
					matches++
				}
			}
			if matches != k {
				continue
			}
			for _, other := range members[r] {
				if s.options[other] == mask {
					continue
				}
				for extra := s.options[other] & mask; extra != 0; {
					digit := nextOpt[extra]
					extra &^= 1 << digit
					moves = append(moves, Move{EliminateMove, other, digit})
				}
			}
		}
	}
	return moves
}

/*

Level 4: limited states (hidden sets)

*/

// LimitedStates finds k digits of a region whose possible cells are
// the same k cells and strikes every other candidate from those
// cells, for k of 2 through 4.
func (s *State) LimitedStates() []Move {
	var moves []Move
	for r := 0; r < numRegions; r++ {
		// Positions within the region that can still hold each digit.
		var cellsFor [numDigits]uint16
		for pos, cell := range members[r] {
			for m := s.options[cell]; m != 0; {
				digit := nextOpt[m]
				m &^= 1 << digit
				cellsFor[digit] |= 1 << pos
			}
		}
		for set := uint16(1); set < 1<<numDigits; set++ {
			k := optsCount[set]
			if k < 2 || k > 4 {
				continue
			}
			var posUnion uint16
			live := true
			for m := set; m != 0; {
				digit := nextOpt[m]
				m &^= 1 << digit
				if cellsFor[digit] == 0 {
					live = false
					break
				}
				posUnion |= cellsFor[digit]
			}
			if !live || optsCount[posUnion] != k {
				continue
			}
			for pos := 0; pos < numDigits; pos++ {
				if posUnion&(1<<pos) == 0 {
					continue
				}
				cell := members[r][pos]
				for extra := s.options[cell] &^ set; extra != 0; {
					digit := nextOpt[extra]
					extra &^= 1 << digit
					moves = append(moves, Move{EliminateMove, cell, digit})
				}
			}
		}
	}
	return moves
}

/*

Level 5: swordfish (generalised fish, sizes 2 through 4)

If k base lines confine a digit to the same k cross lines, the
digit's k placements in those cross lines are spoken for, so it can
be struck from the cross lines everywhere outside the base lines.

*/

// Swordfish finds row- and column-based fish of sizes 2 through 4
// for each digit and strikes the digit from the covered lines.
func (s *State) Swordfish() []Move {
	var moves []Move
	for digit := 0; digit < numDigits; digit++ {
		bit := uint16(1) << digit
		var rowCols, colRows [numDigits]uint16
		for r := 0; r < numDigits; r++ {
			for c := 0; c < numDigits; c++ {
				if s.options[r*numDigits+c]&bit != 0 {
					rowCols[r] |= 1 << c
					colRows[c] |= 1 << r
				}
			}
		}
		for k := 2; k <= 4; k++ {
			moves = fishStrikes(moves, s, digit, k, &rowCols, true)
			moves = fishStrikes(moves, s, digit, k, &colRows, false)
		}
	}
	return moves
}

// fishStrikes emits the eliminations for every size-k fish of the
// digit in one orientation.  lineMask holds, per base line, the
// cross lines where the digit is still possible; base lines with
// fewer than 2 or more than k placements can't take part.
func fishStrikes(moves []Move, s *State, digit, k int, lineMask *[numDigits]uint16, baseRows bool) []Move {
	for set := uint16(1); set < 1<<numDigits; set++ {
		if optsCount[set] != k {
			continue
		}
		var cover uint16
		live := true
		for m := set; m != 0; {
			line := nextOpt[m]
			m &^= 1 << line
			n := optsCount[lineMask[line]]
			if n < 2 || n > k {
				live = false
				break
			}
			cover |= lineMask[line]
		}
		if !live || optsCount[cover] != k {
			continue
		}
		for cm := cover; cm != 0; {
			cross := nextOpt[cm]
			cm &^= 1 << cross
			for other := 0; other < numDigits; other++ {
				if set&(1<<other) != 0 {
					continue
				}
				var cell int
				if baseRows {
					cell = other*numDigits + cross
				} else {
					cell = cross*numDigits + other
				}
				if s.HasOption(cell, digit) {
					moves = append(moves, Move{EliminateMove, cell, digit})
				}
			}
		}
	}
	return moves
}
