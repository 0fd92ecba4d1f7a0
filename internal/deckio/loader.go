// Package deckio loads flashcard decks from files and exports missed-card
// lists. This package depends on deck but deck does not depend on deckio.
package deckio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flashfall/internal/deck"
)

// DeckFile is a deck parsed from disk, before normalization.
type DeckFile struct {
	ID    string
	Name  string
	Pairs []deck.Pair
	Path  string
}

// Build constructs the playable deck from the parsed pairs.
func (f DeckFile) Build() (*deck.Deck, error) {
	d, err := deck.New(f.Pairs)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", f.Path, err)
	}
	return d, nil
}

// LoadFile loads a single deck file, routing by extension.
// Supported: .yaml/.yml documents, .csv and .tsv front/back tables.
func LoadFile(path string) (DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DeckFile{}, fmt.Errorf("reading deck file %s: %w", path, err)
	}

	var df DeckFile
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		df, err = ParseYAML(data)
	case ".csv":
		df, err = ParseCSV(data, ',')
	case ".tsv":
		df, err = ParseCSV(data, '\t')
	default:
		return DeckFile{}, fmt.Errorf("unsupported deck format %q in %s", ext, path)
	}
	if err != nil {
		return DeckFile{}, fmt.Errorf("parsing deck file %s: %w", path, err)
	}

	// File name stands in for missing metadata
	if df.ID == "" {
		base := filepath.Base(path)
		df.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if df.Name == "" {
		df.Name = df.ID
	}
	df.Path = path
	return df, nil
}

// SupportedExtensions returns the deck file extensions LoadFile accepts.
func SupportedExtensions() []string {
	return []string{".yaml", ".yml", ".csv", ".tsv"}
}
