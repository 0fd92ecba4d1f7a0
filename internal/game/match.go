package game

import "flashfall/internal/deck"

// SubmitAnswer checks typed text against the active cards. The oldest
// unflipped card whose accepted answers contain the normalized input is
// removed and scored. Returns whether a card was matched; a miss, a paused
// game and a finished game all leave the state untouched.
func (g *Game) SubmitAnswer(text string) bool {
	if g.paused || g.gameOver {
		return false
	}
	normalized := deck.Normalize(text)
	if normalized == "" {
		return false
	}

	for i, c := range g.cards {
		if c.flipped || !c.accepts(normalized) {
			continue
		}
		g.cards = append(g.cards[:i], g.cards[i+1:]...)
		g.score += g.rules.Score.PerMatch
		g.unlocks.advance(g.score)
		return true
	}
	return false
}
