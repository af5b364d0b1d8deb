// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ValdinePegy/PuzzleEngine/evolve"
	"github.com/ValdinePegy/PuzzleEngine/puzzle"
)

/*

The run archive

Every evolution run gets a UUID.  While the run is going its
per-generation best fitness is pushed onto a Redis list under that
id, so another process can watch progress; when it finishes, the
run's parameters and its best puzzle (grid, reveal mask, profile,
fitness) go into Postgres and the cache entries are dropped.

*/

// NewRunID mints the identifier of a new evolution run.
func NewRunID() string { return uuid.NewString() }

// A RunRecord is one archived run.
type RunRecord struct {
	ID          string
	Started     time.Time
	Finished    time.Time
	Config      evolve.Config
	BestFitness float64
}

// fitnessKey is the Redis key of a run's fitness series.
func fitnessKey(runID string) string { return "pze:run:" + runID + ":fitness" }

/*

live run cache

*/

// CacheFitness appends one generation's best fitness to the run's
// cached series.
func CacheFitness(runID string, fitness float64) error {
	return rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("RPUSH", fitnessKey(runID), fitness)
		return err
	})
}

// FitnessSeries returns the cached fitness series of a run, oldest
// first.
func FitnessSeries(runID string) ([]float64, error) {
	var series []float64
	err := rdExecute(func(conn redis.Conn) error {
		values, err := redis.Float64s(conn.Do("LRANGE", fitnessKey(runID), 0, -1))
		if err != nil {
			return err
		}
		series = values
		return nil
	})
	return series, err
}

// ClearRunCache drops a run's cached series.
func ClearRunCache(runID string) error {
	return rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("DEL", fitnessKey(runID))
		return err
	})
}

/*

persisted runs

*/

// profileJSON is the archived form of a solve profile.
type profileJSON struct {
	Entries []profileEntryJSON `json:"entries"`
	Solved  bool               `json:"solved"`
}

type profileEntryJSON struct {
	Level int `json:"level"`
	Count int `json:"count"`
}

// encodeProfile renders a profile for the archive.
func encodeProfile(p *puzzle.Profile) ([]byte, error) {
	out := profileJSON{Solved: p.IsSolved()}
	for i := 0; i < p.Size(); i++ {
		out.Entries = append(out.Entries, profileEntryJSON{p.Level(i), p.Count(i)})
	}
	return json.Marshal(out)
}

// encodeGrid renders the full solution as its 81 symbols.
func encodeGrid(s *puzzle.Sudoku) string {
	grid := make([]byte, 0, 81)
	symbols := s.Symbols()
	for i := 0; i < 81; i++ {
		grid = append(grid, symbols[s.Cell(i)])
	}
	return string(grid)
}

// encodeReveal renders the reveal mask as 81 '0'/'1' characters.
func encodeReveal(s *puzzle.Sudoku) string {
	mask := make([]byte, 0, 81)
	for i := 0; i < 81; i++ {
		if s.Start(i) {
			mask = append(mask, '1')
		} else {
			mask = append(mask, '0')
		}
	}
	return string(mask)
}

// SaveRun archives a finished run and its best puzzle in one
// transaction, then drops the run's cache entries.
func SaveRun(rec RunRecord, result *evolve.Result) error {
	best := result.Best
	profile, err := encodeProfile(best.CalcProfile())
	if err != nil {
		return fmt.Errorf("couldn't encode profile of run %q: %v", rec.ID, err)
	}
	err = pgExecute(func(tx pgx.Tx) error {
		ctx := context.Background()
		_, err := tx.Exec(ctx,
			`INSERT INTO runs
			   (id, started_at, finished_at, pop_size, generations,
			    mutation_rate, tournament_size, elites, seed, best_fitness)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			rec.ID, rec.Started, rec.Finished,
			rec.Config.PopSize, result.Generations,
			rec.Config.MutationRate, rec.Config.TournamentSize,
			rec.Config.Elites, rec.Config.Seed, result.BestFitness)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO run_puzzles (run_id, grid, reveal, profile, fitness, solved)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			rec.ID, encodeGrid(&best), encodeReveal(&best),
			string(profile), result.BestFitness, best.Profile().IsSolved())
		return err
	})
	if err != nil {
		return err
	}
	return ClearRunCache(rec.ID)
}

// BestRuns returns the archived runs with the lowest best fitness,
// best first.
func BestRuns(limit int) ([]RunRecord, error) {
	var recs []RunRecord
	err := pgExecute(func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			`SELECT id, started_at, finished_at, pop_size, generations,
			        mutation_rate, tournament_size, elites, seed, best_fitness
			   FROM runs ORDER BY best_fitness, started_at LIMIT $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec RunRecord
			err := rows.Scan(&rec.ID, &rec.Started, &rec.Finished,
				&rec.Config.PopSize, &rec.Config.Generations,
				&rec.Config.MutationRate, &rec.Config.TournamentSize,
				&rec.Config.Elites, &rec.Config.Seed, &rec.BestFitness)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return rows.Err()
	})
	return recs, err
}
