// Package game implements the falling-flashcards simulation engine.
// The engine owns all game state and advances it on caller-driven ticks;
// it performs no rendering, reads no input devices and keeps no internal
// timers, so a fixed seed and call sequence always replay identically.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"flashfall/internal/config"
	"flashfall/internal/deck"
)

// ErrInvalidConfig is returned by New for unusable construction parameters.
var ErrInvalidConfig = errors.New("invalid game config")

// Mode selects which card side is shown as the prompt.
type Mode string

const (
	ModeNormal  Mode = "normal"  // front shown, back typed
	ModeReverse Mode = "reverse" // back shown, front typed
	ModeBoth    Mode = "both"    // per-card random orientation
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNormal, ModeReverse, ModeBoth:
		return Mode(s), nil
	case "":
		return ModeNormal, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config contains construction parameters for a game session.
type Config struct {
	BoardWidth      float64 // px
	BoardHeight     float64 // px
	Seed            int64
	Mode            Mode         // empty means ModeNormal
	SpeedMultiplier float64      // > 0; scales every spawned card's fall speed
	Deck            []deck.Pair  // nil means the built-in default deck
	MaxHealth       int          // 0 means the rules default
	Rules           config.Rules // zero value means config.DefaultRules()
}

// Game is one falling-flashcards session.
type Game struct {
	id        string // session UUID, stable across restarts
	rules     config.Rules
	mode      Mode
	boardW    float64
	boardH    float64
	speedMult float64
	maxHealth int
	deck      *deck.Deck
	diff      *config.DifficultyManager

	rng     *rand.Rand
	tick    uint64
	elapsed float64 // seconds of running play

	score  int
	health int

	unlocks *unlockTracker
	sampler *entrySampler

	cards      []*Card
	missed     []deck.Pair
	sinceSpawn float64 // seconds since the last spawn
	nextID     uint64  // card id counter, survives restarts

	paused   bool
	gameOver bool
}

// New creates a game session and spawns its opening card.
func New(cfg Config) (*Game, error) {
	rules := cfg.Rules
	if rules == (config.Rules{}) {
		rules = config.DefaultRules()
	}

	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	if cfg.BoardWidth <= 0 || cfg.BoardHeight <= 0 {
		return nil, fmt.Errorf("%w: board %gx%g", ErrInvalidConfig, cfg.BoardWidth, cfg.BoardHeight)
	}
	if cfg.SpeedMultiplier <= 0 {
		return nil, fmt.Errorf("%w: speed multiplier %g", ErrInvalidConfig, cfg.SpeedMultiplier)
	}

	maxHealth := cfg.MaxHealth
	if maxHealth == 0 {
		maxHealth = rules.Health.Max
	}
	if maxHealth <= 0 {
		return nil, fmt.Errorf("%w: max health %d", ErrInvalidConfig, maxHealth)
	}

	pairs := cfg.Deck
	if pairs == nil {
		pairs, _ = deck.Pairs(deck.DefaultID)
	}
	d, err := deck.New(pairs)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck: %w", err)
	}

	g := &Game{
		id:        uuid.New().String(),
		rules:     rules,
		mode:      mode,
		boardW:    cfg.BoardWidth,
		boardH:    cfg.BoardHeight,
		speedMult: cfg.SpeedMultiplier,
		maxHealth: maxHealth,
		deck:      d,
		diff:      config.NewDifficultyManager(rules.Difficulty),
	}
	g.reset(cfg.Seed)
	return g, nil
}

// reset re-initializes all per-run state with the given seed.
// The session id and the card id counter deliberately survive.
func (g *Game) reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.elapsed = 0
	g.score = 0
	g.health = g.maxHealth
	g.cards = nil
	g.missed = nil
	g.sinceSpawn = 0
	g.paused = false
	g.gameOver = false
	g.unlocks = newUnlockTracker(g.deck.Len(), g.rules.Unlock)
	g.sampler = newEntrySampler(g.rng)

	// Opening card so play never starts on an empty board.
	g.spawnCard()
}

// Restart begins a fresh run from any state, reseeding from the session RNG.
func (g *Game) Restart() {
	g.reset(g.rng.Int63())
}

// Tick advances the simulation by dt seconds. Non-positive dt, a paused
// game and a finished game are all no-ops.
func (g *Game) Tick(dt float64) {
	if dt <= 0 || g.paused || g.gameOver {
		return
	}
	g.tick++
	g.elapsed += dt

	g.advanceSpawn(dt)
	g.advanceCards(dt)
	g.expireFlipped(dt)

	if g.health <= 0 {
		g.gameOver = true
	}
}

// Pause freezes the simulation. No-op when already paused or game over.
func (g *Game) Pause() {
	if g.gameOver || g.paused {
		return
	}
	g.paused = true
}

// Resume continues a paused simulation. No-op otherwise.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
}

// IsPaused reports whether the simulation is paused.
func (g *Game) IsPaused() bool {
	return g.paused
}

// IsGameOver reports whether health has run out.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// ID returns the session identifier.
func (g *Game) ID() string {
	return g.id
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Health returns the remaining health points.
func (g *Game) Health() int {
	return g.health
}

// MaxHealth returns the health pool size.
func (g *Game) MaxHealth() int {
	return g.maxHealth
}

// Elapsed returns the running play time in seconds. Paused time is excluded.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Mode returns the session's card orientation mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// BoardWidth returns the play field width in pixels.
func (g *Game) BoardWidth() float64 {
	return g.boardW
}

// BoardHeight returns the play field height in pixels.
func (g *Game) BoardHeight() float64 {
	return g.boardH
}

// Rules returns a copy of the session's gameplay rules.
func (g *Game) Rules() config.Rules {
	return g.rules
}

// DeckSize returns the number of entries in the session deck.
func (g *Game) DeckSize() int {
	return g.deck.Len()
}

// Cards returns the active cards in spawn order as fresh copies.
func (g *Game) Cards() []CardView {
	out := make([]CardView, len(g.cards))
	for i, c := range g.cards {
		out[i] = CardView{
			ID:        c.id,
			FrontText: c.prompt(),
			BackText:  c.reveal(),
			X:         c.x,
			Y:         c.y,
			Flipped:   c.flipped,
		}
	}
	return out
}

// MissedCards returns the ordered log of cards that reached the bottom.
// The same pair appears once per miss.
func (g *Game) MissedCards() []deck.Pair {
	out := make([]deck.Pair, len(g.missed))
	copy(out, g.missed)
	return out
}

// UnlockedCards returns the unlocked deck entries in deck order.
func (g *Game) UnlockedCards() []deck.Entry {
	n := g.unlocks.count()
	out := make([]deck.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.deck.Entry(i))
	}
	return out
}
