package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arenablitz/arcade/internal/core"
)

var screen = core.NewRectF(0, 0, core.GameWidth, core.GameHeight)

func TestMovePlayerStaysInsideScreen(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := []core.Direction{
		{X: -1}, {X: 1}, {Y: -1}, {Y: 1},
		{X: -1, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {},
	}

	for i := 0; i < 500; i++ {
		p := NewPlayer(core.NewRectF(
			rng.Float64()*1200-200,
			rng.Float64()*1000-200,
			50, 50,
		), 5)
		MovePlayer(&p, dirs[i%len(dirs)], 5, screen)

		b := p.Bounds
		if b.X < 0 || b.Y < 0 || b.X > core.GameWidth-50 || b.Y > core.GameHeight-50 {
			t.Fatalf("player escaped the screen: %+v", b)
		}
	}
}

func TestMovePlayerDiagonalIsNotNormalized(t *testing.T) {
	p := NewPlayer(core.NewRectF(100, 100, 50, 50), 5)
	MovePlayer(&p, core.Direction{X: 1, Y: 1}, 5, screen)

	if p.Bounds.X != 105 || p.Bounds.Y != 105 {
		t.Errorf("diagonal move = (%v, %v), expected (105, 105)", p.Bounds.X, p.Bounds.Y)
	}
}

func TestMovePlayerClampsRatherThanWraps(t *testing.T) {
	p := NewPlayer(core.NewRectF(748, 300, 50, 50), 7)
	MovePlayer(&p, core.Direction{X: 1}, 7, screen)

	if p.Bounds.X != 750 {
		t.Errorf("X = %v, expected clamp at 750", p.Bounds.X)
	}
}

func TestChaseStepsExactlyBySpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	speeds := []float64{2, 2.2, 3.5, 4.5}

	for i := 0; i < 1000; i++ {
		speed := speeds[i%len(speeds)]
		e := NewPursuer(core.NewRectF(float64(rng.Intn(800)), float64(rng.Intn(600)), 50, 50), speed)
		target := core.Vec2{X: float64(rng.Intn(800)), Y: float64(rng.Intn(600))}
		if i%10 == 0 {
			target.X = e.Bounds.X // equal axis case
		}

		beforeX, beforeY := target.X-e.Bounds.X, target.Y-e.Bounds.Y
		Chase(&e, target, speed)
		afterX, afterY := target.X-e.Bounds.X, target.Y-e.Bounds.Y

		for _, axis := range [][2]float64{{beforeX, afterX}, {beforeY, afterY}} {
			before, after := math.Abs(axis[0]), math.Abs(axis[1])
			if before == 0 {
				if after != 0 {
					t.Fatalf("aligned axis moved: %v -> %v", before, after)
				}
				continue
			}
			change := math.Abs(before - after)
			decreased := almostEqual(before-after, speed)
			overshoot := before < speed && almostEqual(after, speed-before)
			if !decreased && !overshoot {
				t.Fatalf("axis delta %v -> %v (change %v) with speed %v", before, after, change, speed)
			}
		}
	}
}

func TestChaseConvergesIntoJitterBand(t *testing.T) {
	player := NewPlayer(core.NewRectF(375, 275, 50, 50), 5)
	e := NewPursuer(core.NewRectF(0, 0, 50, 50), 2)
	target := player.Bounds.Pos()

	// 375/2 rounds up to 188 ticks to close the gap from the origin
	for tick := 1; tick <= 250; tick++ {
		Chase(&e, target, e.Speed)

		if e.Bounds.X > target.X+e.Speed || e.Bounds.Y > target.Y+e.Speed {
			t.Fatalf("tick %d: pursuer passed the player by more than one step: %+v", tick, e.Bounds)
		}
	}

	if math.Abs(e.Bounds.X-375) > 2 || math.Abs(e.Bounds.Y-275) > 2 {
		t.Errorf("pursuer at (%v, %v), expected within 2 of (375, 275)", e.Bounds.X, e.Bounds.Y)
	}
}

func TestResolveCollectsOnceAndIsIdempotent(t *testing.T) {
	player := NewPlayer(core.NewRectF(100, 100, 50, 50), 5)
	others := []Entity{
		NewCollectible(core.NewRectF(120, 120, 30, 30), 50),
		NewCollectible(core.NewRectF(400, 400, 30, 30), 50),
		NewPursuer(core.NewRectF(140, 90, 50, 50), 2),
	}

	first := Resolve(&player, others)
	if first.Points != 50 || len(first.Collected) != 1 || !first.Collided {
		t.Fatalf("first resolve = %+v", first)
	}
	if !others[0].Collected || others[1].Collected {
		t.Error("only the overlapped collectible should be marked")
	}

	second := Resolve(&player, others)
	if second.Points != 0 || len(second.Collected) != 0 {
		t.Errorf("second resolve re-collected: %+v", second)
	}
	if second.Collided != first.Collided {
		t.Error("collided result changed between calls")
	}
}

func TestResolveTouchingEdgesDoNotCollide(t *testing.T) {
	player := NewPlayer(core.NewRectF(100, 100, 50, 50), 5)
	others := []Entity{
		NewFaller(core.NewRectF(150, 100, 50, 50), 4),
		NewFaller(core.NewRectF(100, 50, 50, 50), 4),
		NewCollectible(core.NewRectF(70, 100, 30, 30), 50),
	}

	out := Resolve(&player, others)
	if out.Collided || out.Points != 0 {
		t.Errorf("touching edges should not collide: %+v", out)
	}
}

func TestSpawnerCadence(t *testing.T) {
	s := NewSpawner(1, 30, 50, 50)
	spawned := 0
	for frame := 1; frame <= 31; frame++ {
		f, ok := s.Tick(frame, screen, 4)
		if !ok {
			continue
		}
		spawned++
		if frame != 30 {
			t.Errorf("spawned on frame %d, expected 30", frame)
		}
		if f.Bounds.Y != -50 {
			t.Errorf("spawn y = %v, expected -50", f.Bounds.Y)
		}
		if f.Bounds.X < 0 || f.Bounds.Right() > core.GameWidth {
			t.Errorf("spawn x out of range: %+v", f.Bounds)
		}
		if f.Kind != KindFaller || f.Speed != 4 {
			t.Errorf("unexpected spawn %+v", f)
		}
	}
	if spawned != 1 {
		t.Errorf("spawned %d fallers, expected 1", spawned)
	}
}

func TestStepSpeed(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 4}, {999, 4}, {1000, 4.5}, {2500, 5}, {100000, 54},
	}
	prev := 0.0
	for _, tc := range tests {
		got := StepSpeed(4, 0.5, tc.score, 1000)
		if got != tc.want {
			t.Errorf("StepSpeed(score=%d) = %v, expected %v", tc.score, got, tc.want)
		}
		if got < prev {
			t.Errorf("StepSpeed decreased at score %d", tc.score)
		}
		prev = got
	}
}

func TestRaiseCappedNeverReachesPlayerSpeed(t *testing.T) {
	speed := 2.0
	for wave := 0; wave < 50; wave++ {
		next := RaiseCapped(speed, 0.2, 5-0.5)
		if next < speed {
			t.Fatalf("speed decreased: %v -> %v", speed, next)
		}
		if next >= 5 {
			t.Fatalf("speed %v reached player speed", next)
		}
		speed = next
	}
	if speed != 4.5 {
		t.Errorf("speed settled at %v, expected cap 4.5", speed)
	}
}

func TestStateRemoveIfAndEndGame(t *testing.T) {
	s := NewState(NewPlayer(core.NewRectF(0, 0, 10, 10), 1))
	s.Add(
		NewFaller(core.NewRectF(0, 601, 10, 10), 1),
		NewFaller(core.NewRectF(0, 100, 10, 10), 1),
		NewFaller(core.NewRectF(0, 700, 10, 10), 1),
	)

	removed := s.RemoveIf(func(e *Entity) bool { return BelowScreen(e, screen) })
	if removed != 2 || len(s.Entities) != 1 || s.Entities[0].Bounds.Y != 100 {
		t.Errorf("RemoveIf removed %d, left %+v", removed, s.Entities)
	}

	s.AddScore(10)
	if !s.EndGame() {
		t.Error("first EndGame should transition")
	}
	if s.EndGame() {
		t.Error("second EndGame should not transition again")
	}
	s.AddScore(10)
	if s.Score != 10 {
		t.Errorf("score changed after game over: %d", s.Score)
	}
}

func TestAllCollected(t *testing.T) {
	s := NewState(NewPlayer(core.NewRectF(0, 0, 10, 10), 1))
	if s.AllCollected() {
		t.Error("no collectibles should not count as all collected")
	}
	s.Add(NewCollectible(core.NewRectF(0, 0, 5, 5), 1), NewCollectible(core.NewRectF(9, 9, 5, 5), 1))
	s.Entities[0].Collected = true
	if s.AllCollected() {
		t.Error("one collectible is still out")
	}
	s.Entities[1].Collected = true
	if !s.AllCollected() {
		t.Error("all collectibles are collected")
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
