package deckio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"flashfall/internal/deck"
)

// ParseCSV parses front/back rows separated by the given comma rune
// (',' for .csv, '\t' for Anki-style .tsv exports). Lines starting with
// '#', a recognizable header row and rows without both sides are skipped.
func ParseCSV(data []byte, comma rune) (DeckFile, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.Comment = '#'
	r.FieldsPerRecord = -1 // ragged rows are filtered below, not rejected
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return DeckFile{}, fmt.Errorf("csv read: %w", err)
	}

	var df DeckFile
	for i, rec := range records {
		if i == 0 && isHeaderRow(rec) {
			continue
		}
		if len(rec) < 2 {
			continue // Skip malformed rows
		}
		front := strings.TrimSpace(rec[0])
		back := strings.TrimSpace(rec[1])
		if front == "" || back == "" {
			continue
		}
		df.Pairs = append(df.Pairs, deck.Pair{Front: front, Back: back})
	}
	return df, nil
}

// isHeaderRow detects a front/back column header.
func isHeaderRow(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(rec[0]), "front") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "back")
}
