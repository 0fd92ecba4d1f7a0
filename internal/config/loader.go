package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads gameplay rules.
// Search order: customPath -> ~/.flashfall/configs/flashfall.yaml -> ./configs/flashfall.yaml -> embedded default
func Load(customPath string) (Rules, error) {
	var rules Rules

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return rules, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return rules, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return rules, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flashfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &rules); err == nil {
				return rules, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flashfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &rules); err == nil {
			return rules, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRulesYAML, &rules); err != nil {
		return DefaultRules(), nil // Fallback to hardcoded if embed fails
	}
	return rules, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flashfall", "configs", filename)
}

// ApplyPreset modifies the rules based on a difficulty preset.
func ApplyPreset(rules *Rules, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		rules.Difficulty.Enabled = false
	} else {
		rules.Difficulty.Enabled = true
		rules.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		rules.Health.Max = 5
		rules.Spawn.BaseInterval = 4.0
		rules.Card.BaseFallSpeed = 40
	case DifficultyHard:
		rules.Health.Max = 2
		rules.Spawn.BaseInterval = 2.5
		rules.Card.BaseFallSpeed = 65
	}
}
