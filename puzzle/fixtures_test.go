// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package puzzle

import (
	"strings"

	"github.com/ValdinePegy/PuzzleEngine/random"
)

/*

Shared test fixtures

*/

var (
	// The well-known example puzzle from the Wikipedia Sudoku
	// article: 30 givens, unique solution, solvable with singles.
	wikipediaPuzzle = `
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
	wikipediaGivens = 30

	// Its unique solution, as symbols.
	wikipediaSolution = "" +
		"534678912" +
		"672195348" +
		"198342567" +
		"859761423" +
		"426853791" +
		"713924856" +
		"961537284" +
		"287419635" +
		"345286179"

	// The built-in default grid relabeled 0..8 -> A..I.  Row one
	// of the default grid is 0..8 in order, so first appearance
	// order is exactly A through I.
	lettersPuzzle = `
 A B C  D E F  G H I
 F H E  G A I  B C D
 D I G  B H C  A F E

 I C A  H D G  E B F
 B F D  I C E  H G A
 G E H  A F B  D I C

 H A B  F I D  C E G
 E G F  C B A  I D H
 C D I  E G H  F A B
`
)

// mustLoad builds a puzzle from inline text, failing the test on
// any parse problem.
func mustLoad(t interface{ Fatalf(string, ...interface{}) }, text string) *Sudoku {
	puz := New()
	if err := puz.Load(strings.NewReader(text)); err != nil {
		t.Fatalf("couldn't load fixture: %v", err)
	}
	return puz
}

// newTestRand seeds a deterministic randomness source for a test.
func newTestRand(seed int64) *random.Source { return random.New(seed) }
