package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// CardSnapshot captures one active card for determinism testing.
type CardSnapshot struct {
	ID      uint64
	Front   string
	Back    string
	X       float64
	Y       float64
	Speed   float64
	Dir     Direction
	Flipped bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Score    int
	Health   int
	Elapsed  float64
	Unlocked int
	DeckSize int
	Missed   int
	Cards    []CardSnapshot
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	cards := make([]CardSnapshot, len(g.cards))
	for i, c := range g.cards {
		cards[i] = CardSnapshot{
			ID:      c.id,
			Front:   c.entry.RawFront,
			Back:    c.entry.RawBack,
			X:       c.x,
			Y:       c.y,
			Speed:   c.fallSpeed,
			Dir:     c.dir,
			Flipped: c.flipped,
		}
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.score,
		Health:   g.health,
		Elapsed:  g.elapsed,
		Unlocked: g.unlocks.count(),
		DeckSize: g.deck.Len(),
		Missed:   len(g.missed),
		Cards:    cards,
		State:    state,
	}
}
