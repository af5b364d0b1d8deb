// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Command pze is the command-line front end of the puzzle engine:
// it loads puzzle files, prints grids and solving states, computes
// difficulty profiles, and drives the evolutionary search.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ValdinePegy/PuzzleEngine/evolve"
	"github.com/ValdinePegy/PuzzleEngine/puzzle"
	"github.com/ValdinePegy/PuzzleEngine/random"
	"github.com/ValdinePegy/PuzzleEngine/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pze",
		Short:         "Sudoku difficulty analysis and evolutionary generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(printCmd(), solveCmd(), profileCmd(), evolveCmd(),
		prepareCmd(), clearCmd(), bestCmd())
	return root
}

// loadPuzzle reads the puzzle file every subcommand starts from.
func loadPuzzle(path string) (*puzzle.Sudoku, error) {
	puz := puzzle.New()
	if err := puz.LoadFile(path); err != nil {
		return nil, fmt.Errorf("couldn't load puzzle %q: %v", path, err)
	}
	return puz, nil
}

/*

inspection commands

*/

func printCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "print <puzzle-file>",
		Short: "Print a puzzle grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			puz, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			puz.Print(os.Stdout, full)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print the complete solution, not just the revealed cells")
	return cmd
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Complete a puzzle by brute force and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			puz, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			state := puz.StartState()
			if !state.ForceSolve(0) {
				return fmt.Errorf("puzzle %q has no completion", args[0])
			}
			state.Print(puz.Symbols(), os.Stdout)
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <puzzle-file>",
		Short: "Simulate a human-style solve and print its difficulty profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			puz, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			profile := puz.CalcProfile()
			profile.Print(os.Stdout)
			fmt.Printf("fitness: %g\n", puz.CalcFitness())
			return nil
		},
	}
}

/*

the evolution command

*/

func evolveCmd() *cobra.Command {
	var (
		configPath string
		rates      []float64
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "evolve <puzzle-file>",
		Short: "Breed the puzzle's reveal mask toward a better difficulty profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := evolve.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = evolve.LoadConfig(configPath); err != nil {
					return fmt.Errorf("couldn't load config %q: %v", configPath, err)
				}
			}
			puz, err := loadPuzzle(args[0])
			if err != nil {
				return err
			}
			if save {
				cacheID, dbID, err := storage.Connect()
				if err != nil {
					return err
				}
				defer storage.Close()
				log.Printf("archiving to cache %q, database %q", cacheID, dbID)
			}
			if len(rates) == 0 {
				rates = []float64{cfg.MutationRate}
			}
			for _, rate := range rates {
				cfg.MutationRate = rate
				if err := runOnce(puz, cfg, save); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file of run parameters")
	cmd.Flags().Float64SliceVar(&rates, "rates", nil, "mutation rates to sweep (default: the configured rate)")
	cmd.Flags().BoolVar(&save, "save", false, "archive the run in storage")
	return cmd
}

// runOnce executes a single evolution run and reports its outcome.
func runOnce(seed *puzzle.Sudoku, cfg evolve.Config, save bool) error {
	runID := storage.NewRunID()
	started := time.Now()
	rng := random.New(cfg.Seed)

	progress := func(gen int, best float64) {
		fmt.Printf("%d : %g\n", gen, best)
		if save {
			if err := storage.CacheFitness(runID, best); err != nil {
				log.Printf("couldn't cache fitness of run %q: %v", runID, err)
			}
		}
	}
	result := evolve.Run(seed, cfg, rng, progress)

	fmt.Printf("run %s: best fitness %g after %d generations\n",
		runID, result.BestFitness, result.Generations)
	result.Best.Print(os.Stdout, false)
	result.Best.CalcProfile().Print(os.Stdout)

	if save {
		rec := storage.RunRecord{
			ID:       runID,
			Started:  started,
			Finished: time.Now(),
			Config:   cfg,
		}
		if err := storage.SaveRun(rec, result); err != nil {
			return fmt.Errorf("couldn't archive run %q: %v", runID, err)
		}
		log.Printf("archived run %q", runID)
	}
	return nil
}

/*

storage commands

*/

func prepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "Create or update the archive database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.EnsureSchema()
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the archive tables and their contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.DropSchema()
		},
	}
}

func bestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "best",
		Short: "List the archived runs with the best fitness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := storage.Connect(); err != nil {
				return err
			}
			defer storage.Close()
			recs, err := storage.BestRuns(limit)
			if err != nil {
				return err
			}
			for _, rec := range recs {
				fmt.Printf("%s  fitness %-6g  pop %d  rate %g  %s\n",
					rec.ID, rec.BestFitness, rec.Config.PopSize,
					rec.Config.MutationRate, rec.Started.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to list")
	return cmd
}
