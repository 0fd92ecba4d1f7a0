// Package deck provides flashcard decks for the falling-cards game.
// A deck is built from raw front/back pairs; each pair is normalized into
// an immutable entry carrying the accepted answer variants for both sides.
// Deck files and built-in decks both funnel through New, so the engine only
// ever sees well-formed entries.
package deck

import (
	"errors"
	"strings"
)

// ErrEmptyDeck is returned when construction yields no usable entries.
var ErrEmptyDeck = errors.New("deck: no valid entries")

// Pair is a raw front/back card as supplied by an importer or built-in set.
type Pair struct {
	Front string
	Back  string
}

// Entry is a single normalized deck entry. Accepted answer lists are
// lowercase, diacritic-folded and deduplicated; RawFront and RawBack keep
// the original spelling for display and export.
type Entry struct {
	RawFront     string
	RawBack      string
	FrontAnswers []string
	BackAnswers  []string
}

// AcceptsFront reports whether the normalized input matches the front side.
func (e Entry) AcceptsFront(normalized string) bool {
	return containsAnswer(e.FrontAnswers, normalized)
}

// AcceptsBack reports whether the normalized input matches the back side.
func (e Entry) AcceptsBack(normalized string) bool {
	return containsAnswer(e.BackAnswers, normalized)
}

func containsAnswer(answers []string, normalized string) bool {
	for _, a := range answers {
		if a == normalized {
			return true
		}
	}
	return false
}

// Deck is an ordered, immutable collection of entries.
type Deck struct {
	entries []Entry
}

// New builds a deck from raw pairs. Pairs whose front or back normalizes
// to nothing are skipped; if nothing survives, ErrEmptyDeck is returned.
func New(pairs []Pair) (*Deck, error) {
	entries := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		entry, ok := newEntry(p)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Deck{entries: entries}, nil
}

// newEntry normalizes one pair. The second return value is false when the
// pair is malformed (either side has no usable answer variant).
func newEntry(p Pair) (Entry, bool) {
	front := strings.TrimSpace(p.Front)
	back := strings.TrimSpace(p.Back)

	frontAnswers := AnswerVariants(front)
	backAnswers := AnswerVariants(back)
	if len(frontAnswers) == 0 || len(backAnswers) == 0 {
		return Entry{}, false
	}

	return Entry{
		RawFront:     front,
		RawBack:      back,
		FrontAnswers: frontAnswers,
		BackAnswers:  backAnswers,
	}, true
}

// Len returns the number of entries.
func (d *Deck) Len() int {
	return len(d.entries)
}

// Entry returns the entry at index i in deck order.
func (d *Deck) Entry(i int) Entry {
	return d.entries[i]
}

// Entries returns a copy of all entries in deck order.
func (d *Deck) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}
