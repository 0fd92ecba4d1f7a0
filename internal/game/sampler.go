package game

import "math/rand"

// entrySampler deals deck indices like a shuffled hand: within one cycle
// every unlocked entry comes up exactly once before any repeats. Entries
// unlocked mid-cycle join the rotation at the next reshuffle.
type entrySampler struct {
	rng   *rand.Rand
	queue []int
}

func newEntrySampler(rng *rand.Rand) *entrySampler {
	return &entrySampler{rng: rng}
}

// draw returns the next entry index below limit, reshuffling when the
// current cycle is exhausted.
func (s *entrySampler) draw(limit int) int {
	if limit < 1 {
		limit = 1
	}
	if len(s.queue) == 0 {
		s.refill(limit)
	}
	idx := s.queue[0]
	s.queue = s.queue[1:]
	return idx
}

// refill rebuilds the queue as a fresh permutation of [0, limit).
func (s *entrySampler) refill(limit int) {
	s.queue = make([]int, limit)
	for i := range s.queue {
		s.queue[i] = i
	}
	s.rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
}
