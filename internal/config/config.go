// Package config provides YAML-based rule loading and difficulty
// management for the falling-cards game.
package config

import "fmt"

// Rules contains all tunable gameplay parameters.
type Rules struct {
	Board      BoardRules       `yaml:"board"`
	Card       CardRules        `yaml:"card"`
	Spawn      SpawnRules       `yaml:"spawn"`
	Health     HealthRules      `yaml:"health"`
	Unlock     UnlockRules      `yaml:"unlock"`
	Score      ScoreRules       `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardRules defines the default play field size in pixels.
type BoardRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CardRules defines card geometry and behavior.
type CardRules struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseFallSpeed float64 `yaml:"base_fall_speed"` // px/s before difficulty scaling
	FlipLinger    float64 `yaml:"flip_linger"`     // seconds a flipped card stays on screen
}

// SpawnRules defines spawn pacing and the concurrent-card cap.
type SpawnRules struct {
	BaseInterval      float64 `yaml:"base_interval"`       // seconds between spawns at score 0
	MinInterval       float64 `yaml:"min_interval"`        // pacing floor
	IntervalReduction float64 `yaml:"interval_reduction"`  // seconds shaved per score step
	IntervalScoreStep int     `yaml:"interval_score_step"` // score points per reduction step
	CapBase           int     `yaml:"cap_base"`            // concurrent cards at score 0
	CapScoreStep      int     `yaml:"cap_score_step"`      // score points per extra slot
	CapMax            int     `yaml:"cap_max"`
}

// HealthRules defines the player health pool.
type HealthRules struct {
	Max int `yaml:"max"`
}

// UnlockRules defines how the playable deck portion grows with score.
type UnlockRules struct {
	Initial   int `yaml:"initial"`    // entries unlocked at the start
	ScoreStep int `yaml:"score_step"` // score points per unlock batch
	Batch     int `yaml:"batch"`      // entries unlocked per batch
}

// ScoreRules defines scoring.
type ScoreRules struct {
	PerMatch int `yaml:"per_match"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a DifficultyPreset.
// An empty string is valid and means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
