// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package puzzle

import (
	"fmt"
	"io"
	"strings"
)

/*

Solving profiles

A profile is the ordered log of a simulated solve: one entry per
rule firing, recording the rule's level and how many moves it
produced, plus whether the solve reached a complete board.  The
order matters; a solve that needs a hard technique early reads very
differently from one that saves it for the end, even when the
per-level totals agree.

*/

// A ProfileEntry records one rule firing.
type ProfileEntry struct {
	Level int
	Count int
}

// A Profile is the difficulty fingerprint of a solve attempt.
type Profile struct {
	entries []ProfileEntry
	solved  bool
}

// Add appends one firing to the log.
func (p *Profile) Add(level, count int) {
	p.entries = append(p.entries, ProfileEntry{level, count})
}

// Size returns the number of firings logged.
func (p *Profile) Size() int { return len(p.entries) }

// Level returns the rule level of the i'th firing.
func (p *Profile) Level(i int) int { return p.entries[i].Level }

// Count returns the move count of the i'th firing.
func (p *Profile) Count(i int) int { return p.entries[i].Count }

// IsSolved reports whether the logged solve finished the board.
func (p *Profile) IsSolved() bool { return p.solved }

// SetSolved records whether the solve finished the board.
func (p *Profile) SetSolved(solved bool) { p.solved = solved }

// Clear empties the log for a fresh solve.  The old entries are
// dropped rather than reused: puzzles are copied freely by the
// population container, and a shared backing array would let one
// copy's solve scribble over another's log.
func (p *Profile) Clear() {
	p.entries = nil
	p.solved = false
}

// Print writes the log as "level:count" pairs on one line.
func (p *Profile) Print(out io.Writer) {
	fmt.Fprintln(out, p.String())
}

// Profiles implement Stringer.
func (p *Profile) String() string {
	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%d", e.Level, e.Count)
	}
	if !p.solved {
		if len(p.entries) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("(stuck)")
	}
	return b.String()
}
