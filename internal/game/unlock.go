package game

import "flashfall/internal/config"

// unlockTracker grows the playable portion of the deck as score
// accumulates. The unlocked count is a high-water mark over deck-order
// prefixes: it never shrinks within a run.
type unlockTracker struct {
	total     int
	initial   int
	scoreStep int
	batch     int
	unlocked  int
}

func newUnlockTracker(total int, rules config.UnlockRules) *unlockTracker {
	t := &unlockTracker{
		total:     total,
		initial:   rules.Initial,
		scoreStep: rules.ScoreStep,
		batch:     rules.Batch,
	}
	// At least one entry must be playable
	if t.initial < 1 {
		t.initial = 1
	}
	t.unlocked = min(t.initial, total)
	return t
}

// advance raises the unlocked count to match the given cumulative score.
func (t *unlockTracker) advance(score int) {
	target := t.initial
	if t.scoreStep > 0 && t.batch > 0 && score > 0 {
		target += (score / t.scoreStep) * t.batch
	}
	target = min(target, t.total)
	if target > t.unlocked {
		t.unlocked = target
	}
}

// count returns the number of unlocked entries.
func (t *unlockTracker) count() int {
	return t.unlocked
}
