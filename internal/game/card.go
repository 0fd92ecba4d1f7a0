package game

import "flashfall/internal/deck"

// Direction is the orientation of one card: which side is the prompt and
// which side the player must type.
type Direction int

const (
	FrontToBack Direction = iota // deck front shown, back answers accepted
	BackToFront                  // deck back shown, front answers accepted
)

func (d Direction) String() string {
	if d == BackToFront {
		return "back-to-front"
	}
	return "front-to-back"
}

// Card is one falling flashcard.
type Card struct {
	id        uint64
	entry     deck.Entry
	dir       Direction
	x, y      float64 // top-left corner in board pixels
	fallSpeed float64 // px/s, fixed at spawn
	flipped   bool
	linger    float64 // seconds since the flip
}

// prompt returns the side facing the player.
func (c *Card) prompt() string {
	if c.dir == BackToFront {
		return c.entry.RawBack
	}
	return c.entry.RawFront
}

// reveal returns the hidden side, shown when the card flips.
func (c *Card) reveal() string {
	if c.dir == BackToFront {
		return c.entry.RawFront
	}
	return c.entry.RawBack
}

// accepts reports whether the normalized input answers this card.
func (c *Card) accepts(normalized string) bool {
	if c.dir == BackToFront {
		return c.entry.AcceptsFront(normalized)
	}
	return c.entry.AcceptsBack(normalized)
}

// CardView is a read-only projection of an active card for rendering.
type CardView struct {
	ID        uint64
	FrontText string  // side facing the player
	BackText  string  // side revealed on flip
	X, Y      float64 // top-left corner in board pixels
	Flipped   bool
}
