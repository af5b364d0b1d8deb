// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package evolve

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "pop_size: 250\nmutation_rate: 0.03\nseed: 42\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PopSize != 250 || cfg.MutationRate != 0.03 || cfg.Seed != 42 {
		t.Errorf("overridden fields = %+v", cfg)
	}
	// Untouched fields keep their defaults.
	def := DefaultConfig()
	if cfg.Generations != def.Generations || cfg.TournamentSize != def.TournamentSize || cfg.Elites != def.Elites {
		t.Errorf("default fields lost: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file loaded without error")
	}
}
