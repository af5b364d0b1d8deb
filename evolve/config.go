// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package evolve

import (
	"os"

	"gopkg.in/yaml.v3"
)

/*

Run configuration

Evolution parameters load from a YAML file, with the defaults below
standing in for anything the file omits.  The zero TargetFitness
disables the early-exit check, because a fitness of zero is only
reachable by a fully revealed puzzle.

*/

// A Config holds the parameters of one evolution run.
type Config struct {
	PopSize        int     `yaml:"pop_size"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	TournamentSize int     `yaml:"tournament_size"`
	Elites         int     `yaml:"elites"`
	TargetFitness  float64 `yaml:"target_fitness"`
	Seed           int64   `yaml:"seed"`
}

// DefaultConfig returns the parameters of the reference runs: a
// population of 100 for 1000 generations, toggling each reveal bit
// with probability 0.015, binary-ish tournaments, one elite.
func DefaultConfig() Config {
	return Config{
		PopSize:        100,
		Generations:    1000,
		MutationRate:   0.015,
		TournamentSize: 2,
		Elites:         1,
		Seed:           1,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
