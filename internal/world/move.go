package world

import (
	"math"

	"github.com/arenablitz/arcade/internal/core"
)

// MovePlayer translates the player by speed along each axis of dir, then
// clamps it fully inside limit. Diagonals are not normalized, so diagonal
// speed is speed*sqrt(2).
func MovePlayer(p *Entity, dir core.Direction, speed float64, limit core.RectF) {
	p.Bounds = p.Bounds.
		Translate(float64(dir.X)*speed, float64(dir.Y)*speed).
		ClampInside(limit)
}

// Chase steps a pursuer toward target by speed on each axis independently.
// Equal coordinates do not move. When the remaining gap is smaller than
// speed the pursuer overshoots, which shows as jitter at convergence.
func Chase(e *Entity, target core.Vec2, speed float64) {
	e.Bounds.X = stepToward(e.Bounds.X, target.X, speed)
	e.Bounds.Y = stepToward(e.Bounds.Y, target.Y, speed)
}

func stepToward(v, target, speed float64) float64 {
	switch {
	case v < target:
		return v + speed
	case v > target:
		return v - speed
	default:
		return v
	}
}

// Fall moves a faller down by speed.
func Fall(e *Entity, speed float64) {
	e.Bounds.Y += speed
}

// BelowScreen reports whether the top edge has passed the bottom of limit.
func BelowScreen(e *Entity, limit core.RectF) bool {
	return e.Bounds.Y > limit.Bottom()
}

// StepSpeed returns base + floor(n / every) * step. It never decreases as
// n grows and has no upper bound. A non-positive every disables growth.
func StepSpeed(base, step float64, n, every int) float64 {
	if every <= 0 || n <= 0 {
		return base
	}
	return base + float64(n/every)*step
}

// RaiseCapped returns min(current+step, limit).
func RaiseCapped(current, step, limit float64) float64 {
	return math.Min(current+step, limit)
}
