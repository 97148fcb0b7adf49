package world

import (
	"math/rand"

	"github.com/arenablitz/arcade/internal/core"
)

// Spawner emits fallers on a fixed frame cadence. Cadence is counted in
// frames, not wall time, so a hitch in frame rate changes the spawn rate.
type Spawner struct {
	Interval int     // Frames between spawns
	Width    float64 // Faller width
	Height   float64 // Faller height
	rng      *rand.Rand
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, interval int, w, h float64) *Spawner {
	return &Spawner{
		Interval: interval,
		Width:    w,
		Height:   h,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Tick returns a new faller when frame is a multiple of the interval. The
// faller sits just above the screen at a random x inside limit.
func (s *Spawner) Tick(frame int, limit core.RectF, speed float64) (Entity, bool) {
	if s.Interval <= 0 || frame <= 0 || frame%s.Interval != 0 {
		return Entity{}, false
	}

	x := limit.X + float64(s.rng.Intn(int(limit.W-s.Width)+1))
	bounds := core.NewRectF(x, limit.Y-s.Height, s.Width, s.Height)
	return NewFaller(bounds, speed), true
}

// RandomRect returns a w×h rectangle at a random integer position fully
// inside limit, keeping margin away from every edge.
func RandomRect(rng *rand.Rand, limit core.RectF, w, h, margin float64) core.RectF {
	spanX := int(limit.W - w - 2*margin)
	spanY := int(limit.H - h - 2*margin)
	x := limit.X + margin
	y := limit.Y + margin
	if spanX > 0 {
		x += float64(rng.Intn(spanX + 1))
	}
	if spanY > 0 {
		y += float64(rng.Intn(spanY + 1))
	}
	return core.NewRectF(x, y, w, h)
}
