// Package world holds the entity model and the per-tick rules shared by the
// arcade games: player steering, pursuit, falling, spawning and collision.
// Everything here is deterministic and free of platform dependencies.
package world

import "github.com/arenablitz/arcade/internal/core"

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindPursuer
	KindFaller
	KindCollectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPursuer:
		return "pursuer"
	case KindFaller:
		return "faller"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Hostile reports whether touching this kind ends the session.
func (k Kind) Hostile() bool {
	return k == KindPursuer || k == KindFaller
}

// Entity is a flat record shared by every variant. Collected and Value are
// only meaningful for collectibles.
type Entity struct {
	Kind      Kind
	Bounds    core.RectF
	Speed     float64 // Pixels per tick at the canonical 60 Hz
	Collected bool
	Value     int
}

// NewPlayer creates a player entity.
func NewPlayer(bounds core.RectF, speed float64) Entity {
	return Entity{Kind: KindPlayer, Bounds: bounds, Speed: speed}
}

// NewPursuer creates an enemy that chases the player.
func NewPursuer(bounds core.RectF, speed float64) Entity {
	return Entity{Kind: KindPursuer, Bounds: bounds, Speed: speed}
}

// NewFaller creates an enemy that drops from the top of the screen.
func NewFaller(bounds core.RectF, speed float64) Entity {
	return Entity{Kind: KindFaller, Bounds: bounds, Speed: speed}
}

// NewCollectible creates an uncollected item worth value points.
func NewCollectible(bounds core.RectF, value int) Entity {
	return Entity{Kind: KindCollectible, Bounds: bounds, Value: value}
}

// Active reports whether the entity still takes part in collisions.
func (e *Entity) Active() bool {
	return !(e.Kind == KindCollectible && e.Collected)
}
