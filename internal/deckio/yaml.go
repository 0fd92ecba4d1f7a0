package deckio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"flashfall/internal/deck"
)

// yamlDeck represents the YAML structure of a deck file.
type yamlDeck struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Cards []yamlCard `yaml:"cards"`
}

// yamlCard represents a single card in YAML format.
type yamlCard struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// ParseYAML parses a YAML deck document. Cards with a missing side are
// skipped here; answer-level validation happens in deck.New.
func ParseYAML(data []byte) (DeckFile, error) {
	var yd yamlDeck
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return DeckFile{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	df := DeckFile{
		ID:    yd.ID,
		Name:  yd.Name,
		Pairs: make([]deck.Pair, 0, len(yd.Cards)),
	}
	for _, c := range yd.Cards {
		if c.Front == "" || c.Back == "" {
			continue // Skip malformed cards
		}
		df.Pairs = append(df.Pairs, deck.Pair{Front: c.Front, Back: c.Back})
	}
	return df, nil
}
