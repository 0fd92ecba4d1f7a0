package game

import "flashfall/internal/deck"

// advanceCards moves unflipped cards and handles bottom crossings.
// A crossing card is clamped to the flip line, flipped to show its answer,
// logged as missed and costs one health point while any health remains.
func (g *Game) advanceCards(dt float64) {
	flipLine := g.boardH - g.rules.Card.Height
	for _, c := range g.cards {
		if c.flipped {
			continue
		}
		c.y += c.fallSpeed * dt
		if c.y < flipLine {
			continue
		}
		c.y = flipLine
		c.flipped = true
		c.linger = 0
		g.missed = append(g.missed, deck.Pair{Front: c.entry.RawFront, Back: c.entry.RawBack})
		if g.health > 0 {
			g.health--
		}
	}
}

// expireFlipped ages flipped cards and removes those past the linger
// window. Surviving cards keep their ids and relative order.
func (g *Game) expireFlipped(dt float64) {
	keep := g.cards[:0]
	for _, c := range g.cards {
		if c.flipped {
			c.linger += dt
			if c.linger >= g.rules.Card.FlipLinger {
				continue
			}
		}
		keep = append(keep, c)
	}
	g.cards = keep
}
