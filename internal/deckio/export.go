package deckio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"flashfall/internal/deck"
)

// WriteMissed writes a missed-card log as CSV with a front,back header.
// A card missed several times appears once: the first occurrence wins.
// The output is itself a loadable deck file for targeted practice.
func WriteMissed(w io.Writer, pairs []deck.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"front", "back"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[p.Front]; dup {
			continue
		}
		seen[p.Front] = struct{}{}
		if err := cw.Write([]string{p.Front, p.Back}); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveMissed writes a missed-card log to the given path.
func SaveMissed(path string, pairs []deck.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteMissed(f, pairs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
