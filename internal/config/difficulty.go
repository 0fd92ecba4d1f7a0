package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns the current difficulty level (0.0 to 1.0) based on score
// or elapsed play time in seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.cfg.InitialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.cfg.InitialLevel
	}

	// Clamp progress to [0, 1]
	progress = math.Max(0.0, math.Min(1.0, progress))

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed returns the current fall speed based on difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}
