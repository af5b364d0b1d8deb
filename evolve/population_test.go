// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package evolve

import (
	"testing"

	"github.com/ValdinePegy/PuzzleEngine/random"
)

// organism is a trivial test organism whose fitness is its value.
type organism struct{ score float64 }

func orgFitness(o *organism) float64 { return o.score }

func TestInsertAndAccess(t *testing.T) {
	var pop Population[organism]
	pop.Insert(organism{3}, 4)
	if pop.Size() != 4 {
		t.Fatalf("size = %d, want 4", pop.Size())
	}
	pop.At(2).score = 7
	if pop.At(2).score != 7 || pop.At(1).score != 3 {
		t.Error("At does not reference organisms independently")
	}
	pop.Clear()
	if pop.Size() != 0 {
		t.Error("clear left organisms behind")
	}
}

func TestEliteSelect(t *testing.T) {
	var pop Population[organism]
	for _, s := range []float64{5, 2, 9, 2, 7} {
		pop.Insert(organism{s}, 1)
	}
	pop.EliteSelect(orgFitness, 2, 2)
	pop.Update()
	// The two best scores are 2 and 2; ties keep index order, so
	// the next generation is the organism at index 1 twice, then
	// index 3 twice.
	want := []float64{2, 2, 2, 2}
	if pop.Size() != len(want) {
		t.Fatalf("size = %d, want %d", pop.Size(), len(want))
	}
	for i, w := range want {
		if pop.At(i).score != w {
			t.Errorf("slot %d score = %g, want %g", i, pop.At(i).score, w)
		}
	}
}

func TestEliteSelectPreservesSingleBest(t *testing.T) {
	var pop Population[organism]
	for _, s := range []float64{5, 1, 9} {
		pop.Insert(organism{s}, 1)
	}
	pop.EliteSelect(orgFitness, 1, 1)
	pop.Update()
	if pop.Size() != 1 || pop.At(0).score != 1 {
		t.Fatalf("elite = %+v, want the score-1 organism alone", pop.orgs)
	}
}

func TestTournamentSelect(t *testing.T) {
	var pop Population[organism]
	scores := []float64{5, 2, 9, 1, 7}
	for _, s := range scores {
		pop.Insert(organism{s}, 1)
	}
	rng := random.New(11)
	pop.TournamentSelect(orgFitness, 3, rng, 20)
	if len(pop.next) != 20 {
		t.Fatalf("selected %d winners, want 20", len(pop.next))
	}
	// Every winner must be a copy of an existing organism.
	valid := map[float64]bool{5: true, 2: true, 9: true, 1: true, 7: true}
	for i := range pop.next {
		if !valid[pop.next[i].score] {
			t.Fatalf("winner %d has foreign score %g", i, pop.next[i].score)
		}
	}
	pop.Update()
	if pop.Size() != 20 {
		t.Error("update did not commit the winners")
	}
}

func TestUpdateSwapsGenerations(t *testing.T) {
	var pop Population[organism]
	pop.Insert(organism{1}, 3)
	pop.EliteSelect(orgFitness, 1, 1)
	pop.Update()
	if pop.Size() != 1 {
		t.Fatalf("size after update = %d, want 1", pop.Size())
	}
	if pop.next != nil {
		t.Error("update left a next generation behind")
	}
}
