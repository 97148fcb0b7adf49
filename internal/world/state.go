package world

import "github.com/arenablitz/arcade/internal/core"

// State is everything a game session owns: score, wave, the game-over flag
// and the flat entity list. The player lives outside the list so rules can
// address it directly.
type State struct {
	Score           int
	Level           int
	Frame           int  // Ticks simulated since the last reset
	GameOver        bool // Set once per session lifetime until Reset
	DifficultySpeed float64
	Player          Entity
	Entities        []Entity // Non-player entities in spawn order
}

// NewState creates a fresh state at level 1.
func NewState(player Entity) State {
	return State{
		Level:    1,
		Player:   player,
		Entities: make([]Entity, 0, 16),
	}
}

// Add appends entities to the list.
func (s *State) Add(es ...Entity) {
	s.Entities = append(s.Entities, es...)
}

// Count returns how many entities of a kind exist.
func (s *State) Count(kind Kind) int {
	n := 0
	for i := range s.Entities {
		if s.Entities[i].Kind == kind {
			n++
		}
	}
	return n
}

// Each calls fn with a pointer to every entity of the given kind, in order.
func (s *State) Each(kind Kind, fn func(e *Entity)) {
	for i := range s.Entities {
		if s.Entities[i].Kind == kind {
			fn(&s.Entities[i])
		}
	}
}

// RemoveIf drops every entity for which drop returns true, keeping order.
// It returns the number of removed entities.
func (s *State) RemoveIf(drop func(e *Entity) bool) int {
	kept := s.Entities[:0]
	removed := 0
	for i := range s.Entities {
		if drop(&s.Entities[i]) {
			removed++
			continue
		}
		kept = append(kept, s.Entities[i])
	}
	s.Entities = kept
	return removed
}

// AllCollected reports whether every collectible has been collected. It is
// false when there are no collectibles at all.
func (s *State) AllCollected() bool {
	seen := false
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Kind != KindCollectible {
			continue
		}
		seen = true
		if !e.Collected {
			return false
		}
	}
	return seen
}

// AddScore increases the score while the session is alive.
func (s *State) AddScore(points int) {
	if s.GameOver || points <= 0 {
		return
	}
	s.Score += points
}

// EndGame flips the session to game over. It returns false when the session
// was already over, so the transition happens at most once.
func (s *State) EndGame() bool {
	if s.GameOver {
		return false
	}
	s.GameOver = true
	return true
}

// Snapshot returns the platform-facing view of the state.
func (s *State) Snapshot() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.GameOver,
	}
}
