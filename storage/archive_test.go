// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package storage

import (
	"strings"
	"testing"

	"github.com/ValdinePegy/PuzzleEngine/puzzle"
)

// These tests cover the encoding half of the archive; tests that
// need a live Redis or Postgres belong to integration runs.

const archivePuzzle = `
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

func loadArchivePuzzle(t *testing.T) *puzzle.Sudoku {
	t.Helper()
	puz := puzzle.New()
	if err := puz.Load(strings.NewReader(archivePuzzle)); err != nil {
		t.Fatalf("couldn't load puzzle: %v", err)
	}
	return puz
}

func TestEncodeGrid(t *testing.T) {
	puz := loadArchivePuzzle(t)
	grid := encodeGrid(puz)
	if len(grid) != 81 {
		t.Fatalf("grid length %d", len(grid))
	}
	// The first row of the completed grid.
	if got := grid[:9]; got != "534678912" {
		t.Errorf("first row = %q", got)
	}
}

func TestEncodeReveal(t *testing.T) {
	puz := loadArchivePuzzle(t)
	reveal := encodeReveal(puz)
	if len(reveal) != 81 {
		t.Fatalf("reveal length %d", len(reveal))
	}
	ones := strings.Count(reveal, "1")
	if ones != 30 {
		t.Errorf("%d revealed bits, want 30", ones)
	}
	if reveal[:9] != "110010000" {
		t.Errorf("first row mask = %q", reveal[:9])
	}
}

func TestEncodeProfile(t *testing.T) {
	puz := loadArchivePuzzle(t)
	data, err := encodeProfile(puz.CalcProfile())
	if err != nil {
		t.Fatalf("encodeProfile: %v", err)
	}
	body := string(data)
	if !strings.Contains(body, `"solved":true`) {
		t.Errorf("profile JSON missing solved flag: %s", body)
	}
	if !strings.Contains(body, `"level":0`) {
		t.Errorf("profile JSON missing entries: %s", body)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b || len(a) != 36 {
		t.Errorf("run ids %q / %q", a, b)
	}
}
