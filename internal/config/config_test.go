package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardCoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFactorRunConfig()) {
		t.Errorf("embedded defaults differ from hard-coded defaults:\n%+v\n%+v", cfg, DefaultFactorRunConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseDurations(t *testing.T) {
	cfg, err := Parse([]byte("battle:\n  clash_delay: 130ms\n  end_delay: 3s\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Battle.ClashDelay != 130*time.Millisecond {
		t.Errorf("ClashDelay = %v, expected 130ms", cfg.Battle.ClashDelay)
	}
	if cfg.Battle.EndDelay != 3*time.Second {
		t.Errorf("EndDelay = %v, expected 3s", cfg.Battle.EndDelay)
	}
	// Keys not named keep their defaults
	if cfg.Gates.Speed != 2.5 {
		t.Errorf("Gates.Speed = %v, expected default 2.5", cfg.Gates.Speed)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("gates:\n  speed: 4\n  operations: [\"*4\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gates.Speed != 4 {
		t.Errorf("Gates.Speed = %v, expected 4", cfg.Gates.Speed)
	}
	if len(cfg.Gates.Operations) != 1 || cfg.Gates.Operations[0] != "*4" {
		t.Errorf("Operations = %v, expected [*4]", cfg.Gates.Operations)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gates: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("malformed explicit config should fail with a config: error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FactorRunConfig)
	}{
		{"smoothing too low", func(c *FactorRunConfig) { c.Player.Smoothing = 0.05 }},
		{"smoothing too high", func(c *FactorRunConfig) { c.Player.Smoothing = 0.5 }},
		{"zero world", func(c *FactorRunConfig) { c.World.Width = 0 }},
		{"player offset outside world", func(c *FactorRunConfig) { c.World.PlayerOffset = 900 }},
		{"no operations", func(c *FactorRunConfig) { c.Gates.Operations = nil }},
		{"bad operation symbol", func(c *FactorRunConfig) { c.Gates.Operations = []string{"+2"} }},
		{"operation factor one", func(c *FactorRunConfig) { c.Gates.Operations = []string{"*1"} }},
		{"operation factor not a number", func(c *FactorRunConfig) { c.Gates.Operations = []string{"/x"} }},
		{"zero clash delay", func(c *FactorRunConfig) { c.Battle.ClashDelay = 0 }},
		{"zero per crate", func(c *FactorRunConfig) { c.Gates.PerCrate = 0 }},
		{"zero max balls", func(c *FactorRunConfig) { c.Player.MaxBalls = 0 }},
		{"zero army spread", func(c *FactorRunConfig) { c.Battle.ArmySpread = 0 }},
		{"start level zero", func(c *FactorRunConfig) { c.Difficulty.StartLevel = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFactorRunConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFactorRunConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultFactorRunConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset should enable progression at 0.7, got %+v", cfg.Difficulty)
	}
	if cfg.Gates.Speed <= DefaultFactorRunConfig().Gates.Speed {
		t.Error("hard preset should speed up the gates")
	}

	cfg = DefaultFactorRunConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultFactorRunConfig()) {
		t.Error("empty preset should leave the config untouched")
	}

	def := DefaultFactorRunConfig()
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultFactorRunConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produced an invalid config: %v", p, err)
		}
		if cfg.Battle.BaseArmy != def.Battle.BaseArmy ||
			cfg.Battle.ArmyPerLevel != def.Battle.ArmyPerLevel ||
			cfg.Battle.ArmySpread != def.Battle.ArmySpread {
			t.Errorf("preset %s changed the army size rule: %+v", p, cfg.Battle)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to the empty preset")
	}
}
