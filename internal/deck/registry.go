package deck

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultID is the deck used when the caller does not name one.
const DefaultID = "welsh-greetings"

// Info describes a registered built-in deck.
type Info struct {
	ID    string
	Title string
	Size  int
}

type source struct {
	info  Info
	pairs []Pair
}

var (
	regMu   sync.RWMutex
	sources = map[string]source{}
)

// Register adds a built-in deck to the catalog. It panics if the id is
// already taken, which keeps init-time registration honest.
func Register(id, title string, pairs []Pair) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := sources[id]; exists {
		panic(fmt.Sprintf("deck: duplicate registration for %q", id))
	}
	sources[id] = source{
		info:  Info{ID: id, Title: title, Size: len(pairs)},
		pairs: pairs,
	}
}

// List returns info for all registered decks sorted by id.
func List() []Info {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]Info, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pairs returns a copy of the raw pairs of a registered deck.
func Pairs(id string) ([]Pair, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := sources[id]
	if !ok {
		return nil, false
	}
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out, true
}
