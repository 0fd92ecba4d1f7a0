package game

import "math"

// advanceSpawn accumulates spawn time and releases at most one card per
// tick. A cap-blocked spawn keeps its accumulated time, so a freed slot
// fills on the next tick.
func (g *Game) advanceSpawn(dt float64) {
	g.sinceSpawn += dt
	if g.sinceSpawn < g.spawnInterval() {
		return
	}
	if len(g.cards) >= g.concurrencyCap() {
		return
	}
	g.sinceSpawn = 0
	g.spawnCard()
}

// spawnInterval returns the seconds between spawns at the current score.
// The interval shrinks as the score grows but never drops below the floor.
func (g *Game) spawnInterval() float64 {
	steps := 0
	if g.rules.Spawn.IntervalScoreStep > 0 {
		steps = g.score / g.rules.Spawn.IntervalScoreStep
	}
	interval := g.rules.Spawn.BaseInterval - g.rules.Spawn.IntervalReduction*float64(steps)
	return math.Max(g.rules.Spawn.MinInterval, interval)
}

// concurrencyCap returns the active-card limit at the current score.
// Flipped cards still on screen count toward the cap.
func (g *Game) concurrencyCap() int {
	extra := 0
	if g.rules.Spawn.CapScoreStep > 0 {
		extra = g.score / g.rules.Spawn.CapScoreStep
	}
	return min(g.rules.Spawn.CapMax, g.rules.Spawn.CapBase+extra)
}

// fallSpeed returns the speed for a newly spawned card in px/s.
func (g *Game) fallSpeed() float64 {
	return g.diff.Speed(g.rules.Card.BaseFallSpeed, g.score, g.elapsed) * g.speedMult
}

// spawnCard draws the next unlocked entry and places a card at the top edge.
func (g *Game) spawnCard() {
	idx := g.sampler.draw(g.unlocks.count())
	entry := g.deck.Entry(idx)

	dir := FrontToBack
	switch g.mode {
	case ModeReverse:
		dir = BackToFront
	case ModeBoth:
		if g.rng.Intn(2) == 1 {
			dir = BackToFront
		}
	}

	x := 0.0
	if maxX := g.boardW - g.rules.Card.Width; maxX > 0 {
		x = g.rng.Float64() * maxX
	}

	g.nextID++
	g.cards = append(g.cards, &Card{
		id:        g.nextID,
		entry:     entry,
		dir:       dir,
		x:         x,
		y:         0,
		fallSpeed: g.fallSpeed(),
	})
}
