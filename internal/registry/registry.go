// Package registry maps enumerated game identifiers to game factories.
// The catalog is assembled explicitly by the caller; nothing registers
// itself at init time.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arenablitz/arcade/internal/core"
)

// ErrUnknownGame is returned when an identifier names no game.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameID enumerates the games the arcade can launch.
type GameID int

const (
	CyberNinja GameID = iota + 1
	ShadowOps
)

// String returns the identifier used on the command line and in asset paths.
func (id GameID) String() string {
	switch id {
	case CyberNinja:
		return "cyberninja"
	case ShadowOps:
		return "shadowops"
	default:
		return fmt.Sprintf("game(%d)", int(id))
	}
}

// ParseGameID parses a command-line identifier. Matching ignores case.
func ParseGameID(s string) (GameID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cyberninja":
		return CyberNinja, nil
	case "shadowops":
		return ShadowOps, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownGame, s)
}

// Game is the interface every arcade game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the enumerated identifier for this game.
	ID() GameID

	// Title returns a human-readable name for display (e.g., "Shadow Ops").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputSnapshot) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new instance of a game.
type Factory func() Game

// Entry is one launchable game.
type Entry struct {
	ID    GameID
	Title string
	New   Factory
}

// Registry is an ordered, immutable catalog of games.
type Registry struct {
	entries []Entry
}

// New builds a registry. Entries keep the given order, which is the order
// the launcher shows them in.
func New(entries ...Entry) (*Registry, error) {
	seen := make(map[GameID]bool, len(entries))
	for _, e := range entries {
		if e.New == nil {
			return nil, fmt.Errorf("registry: %s has no factory", e.ID)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("registry: game %s listed twice", e.ID)
		}
		seen[e.ID] = true
	}
	return &Registry{entries: append([]Entry(nil), entries...)}, nil
}

// Entries returns the catalog in launcher order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id GameID) (Entry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w %s", ErrUnknownGame, id)
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id GameID) (Game, error) {
	e, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return e.New(), nil
}

// CreateByName parses name and instantiates the game it names.
func (r *Registry) CreateByName(name string) (Game, error) {
	id, err := ParseGameID(name)
	if err != nil {
		return nil, err
	}
	return r.Create(id)
}
