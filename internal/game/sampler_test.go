package game

import (
	"math/rand"
	"testing"
)

func TestSamplerFairRotation(t *testing.T) {
	s := newEntrySampler(rand.New(rand.NewSource(1)))

	// Every entry appears exactly once per cycle
	for cycle := 0; cycle < 3; cycle++ {
		seen := map[int]int{}
		for i := 0; i < 5; i++ {
			seen[s.draw(5)]++
		}
		for idx := 0; idx < 5; idx++ {
			if seen[idx] != 1 {
				t.Errorf("cycle %d: entry %d drawn %d times, want 1", cycle, idx, seen[idx])
			}
		}
	}
}

func TestSamplerGrownLimitJoinsNextCycle(t *testing.T) {
	s := newEntrySampler(rand.New(rand.NewSource(2)))

	// Start a cycle over two entries, then grow the limit mid-cycle
	if got := s.draw(2); got > 1 {
		t.Fatalf("draw out of range: %d", got)
	}
	if got := s.draw(5); got > 1 {
		t.Errorf("mid-cycle draw should still come from the old permutation, got %d", got)
	}

	// The queue is now empty; the next cycle covers all five entries
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		seen[s.draw(5)] = true
	}
	for idx := 0; idx < 5; idx++ {
		if !seen[idx] {
			t.Errorf("entry %d missing from the refreshed cycle", idx)
		}
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a := newEntrySampler(rand.New(rand.NewSource(7)))
	b := newEntrySampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		x, y := a.draw(6), b.draw(6)
		if x != y {
			t.Fatalf("draw %d mismatch: %d vs %d", i, x, y)
		}
	}
}

func TestSamplerSingleEntry(t *testing.T) {
	s := newEntrySampler(rand.New(rand.NewSource(3)))
	for i := 0; i < 4; i++ {
		if got := s.draw(1); got != 0 {
			t.Errorf("single-entry draw mismatch: %d vs 0", got)
		}
	}
}
