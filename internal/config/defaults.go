package config

import (
	_ "embed"
)

//go:embed defaults/flashfall.yaml
var defaultRulesYAML []byte

// DefaultRules returns the default gameplay rules.
func DefaultRules() Rules {
	return Rules{
		Board: BoardRules{
			Width:  800,
			Height: 600,
		},
		Card: CardRules{
			Width:         150,
			Height:        50,
			BaseFallSpeed: 50, // px/s
			FlipLinger:    1.0,
		},
		Spawn: SpawnRules{
			BaseInterval:      3.0,
			MinInterval:       0.5,
			IntervalReduction: 0.25,
			IntervalScoreStep: 5,
			CapBase:           4,
			CapScoreStep:      10,
			CapMax:            8,
		},
		Health: HealthRules{
			Max: 3,
		},
		Unlock: UnlockRules{
			Initial:   5,
			ScoreStep: 5,
			Batch:     1,
		},
		Score: ScoreRules{
			PerMatch: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default rules YAML.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
