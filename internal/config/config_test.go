package config

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Rules
	if err := yaml.Unmarshal(defaultRulesYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	want := DefaultRules()
	if fromYAML != want {
		t.Errorf("embedded default drifted from DefaultRules:\n%+v\nvs\n%+v", fromYAML, want)
	}
}

func TestDefaultRulesValues(t *testing.T) {
	r := DefaultRules()
	if r.Spawn.BaseInterval != 3.0 || r.Spawn.MinInterval != 0.5 {
		t.Errorf("spawn pacing mismatch: %+v", r.Spawn)
	}
	if r.Card.Width != 150 || r.Card.Height != 50 || r.Card.BaseFallSpeed != 50 {
		t.Errorf("card geometry mismatch: %+v", r.Card)
	}
	if r.Health.Max != 3 {
		t.Errorf("health mismatch: %d vs 3", r.Health.Max)
	}
	if r.Unlock.Initial != 5 || r.Unlock.ScoreStep != 5 || r.Unlock.Batch != 1 {
		t.Errorf("unlock rules mismatch: %+v", r.Unlock)
	}
}

func TestApplyPreset(t *testing.T) {
	r := DefaultRules()
	ApplyPreset(&r, DifficultyHard)
	if !r.Difficulty.Enabled {
		t.Error("hard preset should keep progression enabled")
	}
	if r.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level mismatch: %v vs 0.7", r.Difficulty.InitialLevel)
	}
	if r.Health.Max != 2 {
		t.Errorf("hard health mismatch: %d vs 2", r.Health.Max)
	}

	r = DefaultRules()
	ApplyPreset(&r, DifficultyFixed)
	if r.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	m := NewDifficultyManager(cfg)

	if lvl := m.Level(0, 0); lvl != 0.0 {
		t.Errorf("level at score 0 mismatch: %v vs 0", lvl)
	}
	if lvl := m.Level(25, 0); math.Abs(lvl-0.5) > 1e-9 {
		t.Errorf("level at half progression mismatch: %v vs 0.5", lvl)
	}
	if lvl := m.Level(500, 0); lvl != 1.0 {
		t.Errorf("level must clamp at 1.0: %v", lvl)
	}

	// Speed doubles at max difficulty with multiplier 1.0.
	if spd := m.Speed(50, 500, 0); math.Abs(spd-100) > 1e-9 {
		t.Errorf("speed at max difficulty mismatch: %v vs 100", spd)
	}

	cfg.Enabled = false
	m = NewDifficultyManager(cfg)
	if lvl := m.Level(500, 0); lvl != 0.0 {
		t.Errorf("disabled manager must stay at initial level: %v", lvl)
	}
}
