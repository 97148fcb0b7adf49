package session

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/games/cyberninja"
	"github.com/arenablitz/arcade/internal/registry"
	"github.com/arenablitz/arcade/internal/world"
)

// fakeGame counts calls and ends after a fixed number of steps.
type fakeGame struct {
	steps, resets, renders int
	overAfter              int
	over                   bool
	lastSeed               int64
}

func (g *fakeGame) ID() registry.GameID { return registry.ShadowOps }
func (g *fakeGame) Title() string       { return "fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
	g.lastSeed = cfg.Seed
}
func (g *fakeGame) Step(core.InputSnapshot) core.StepResult {
	g.steps++
	var events []core.Event
	if g.overAfter > 0 && g.steps >= g.overAfter && !g.over {
		g.over = true
		events = append(events, core.EventGameOver)
	}
	return core.StepResult{State: g.State(), Events: events}
}
func (g *fakeGame) Render(dst *core.Screen) { g.renders++ }
func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps, Level: 1, GameOver: g.over}
}

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time        { return f.now }
func (f *fakeTime) Sleep(d time.Duration) { f.now = f.now.Add(d) }

func pressed(keys ...core.Key) core.InputSnapshot {
	in := core.NewInputSnapshot()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

func newSession(g registry.Game, opts ...Option) *Session {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	opts = append([]Option{WithSeeder(func() int64 { return 77 })}, opts...)
	return New(g, cfg, opts...)
}

func TestStateMachine(t *testing.T) {
	tests := []struct {
		name     string
		gameOver bool
		in       core.InputSnapshot
		want     ExitReason
		steps    int // expected step count after the frame
		resets   int // expected reset count after the frame
	}{
		{"playing steps", false, core.NewInputSnapshot(), ExitNone, 1, 1},
		{"escape while playing", false, pressed(core.KeyEscape), ExitBack, 0, 1},
		{"quit event while playing", false, core.InputSnapshot{QuitRequested: true}, ExitQuit, 0, 1},
		{"Q ignored while playing", false, pressed(core.KeyQ), ExitNone, 1, 1},
		{"R ignored while playing", false, pressed(core.KeyR), ExitNone, 1, 1},
		{"game over waits", true, core.NewInputSnapshot(), ExitNone, 1, 1},
		{"game over R restarts", true, pressed(core.KeyR), ExitNone, 0, 2},
		{"game over Q quits", true, pressed(core.KeyQ), ExitQuit, 1, 1},
		{"game over escape", true, pressed(core.KeyEscape), ExitBack, 1, 1},
		{"game over quit event", true, core.InputSnapshot{QuitRequested: true}, ExitQuit, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{overAfter: 1}
			if !tc.gameOver {
				g.overAfter = 0
			}
			s := newSession(g)
			if tc.gameOver {
				s.Advance(core.NewInputSnapshot())
				if s.Phase() != core.PhaseGameOver {
					t.Fatal("setup: expected game over")
				}
			}

			got, _ := s.Advance(tc.in)
			if got != tc.want {
				t.Errorf("exit = %v, expected %v", got, tc.want)
			}
			if g.steps != tc.steps || g.resets != tc.resets {
				t.Errorf("steps=%d resets=%d, expected steps=%d resets=%d", g.steps, g.resets, tc.steps, tc.resets)
			}
		})
	}
}

func TestRestartUsesFreshSeed(t *testing.T) {
	g := &fakeGame{overAfter: 1}
	s := newSession(g)
	if g.lastSeed != 1 {
		t.Fatalf("initial seed = %d, expected configured 1", g.lastSeed)
	}

	s.Advance(core.NewInputSnapshot())
	_, events := s.Advance(pressed(core.KeyR))

	if !reflect.DeepEqual(events, []core.Event{core.EventRestart}) {
		t.Errorf("events = %v", events)
	}
	if g.lastSeed != 77 || s.Config().Seed != 77 {
		t.Errorf("restart seed = %d, expected 77", g.lastSeed)
	}
	if s.Phase() != core.PhasePlaying || s.Restarts() != 1 {
		t.Errorf("phase %v restarts %d", s.Phase(), s.Restarts())
	}
}

func TestZeroSeedComesFromSeeder(t *testing.T) {
	g := &fakeGame{}
	New(g, core.DefaultConfig(), WithSeeder(func() int64 { return 5 }))
	if g.lastSeed != 5 {
		t.Errorf("seed = %d, expected 5", g.lastSeed)
	}
}

func TestEventHandler(t *testing.T) {
	var got [][]core.Event
	g := &fakeGame{overAfter: 2}
	s := newSession(g, WithEventHandler(func(ev []core.Event) { got = append(got, ev) }))

	s.Advance(core.NewInputSnapshot())
	s.Advance(core.NewInputSnapshot())
	s.Advance(pressed(core.KeyR))

	want := [][]core.Event{{core.EventGameOver}, {core.EventRestart}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("handler saw %v, expected %v", got, want)
	}
}

func TestRunUntilScriptEnds(t *testing.T) {
	g := &fakeGame{}
	s := newSession(g)
	clock := &fakeTime{now: time.Unix(0, 0)}
	surface := NewBufferSurface(40, 12)

	reason, err := s.Run(Holding(10, core.KeyRight), surface, core.NewFrameClock(clock))
	if err != nil {
		t.Fatal(err)
	}
	if reason != ExitQuit {
		t.Errorf("exit = %v, expected quit when input ends", reason)
	}
	if g.steps != 10 || g.renders != 10 || surface.Presented != 10 {
		t.Errorf("steps=%d renders=%d presented=%d, expected 10 each", g.steps, g.renders, surface.Presented)
	}
	if elapsed := clock.now.Sub(time.Unix(0, 0)); elapsed < 10*core.Interval(60) {
		t.Errorf("clock advanced %v, expected at least 10 frames", elapsed)
	}
}

func TestRunReturnsBackOnEscape(t *testing.T) {
	g := &fakeGame{}
	s := newSession(g)
	script := NewScript(core.NewInputSnapshot(), core.NewInputSnapshot(), pressed(core.KeyEscape), core.NewInputSnapshot())

	reason, err := s.Run(script, NewBufferSurface(10, 5), core.NewFrameClock(&fakeTime{}))
	if err != nil || reason != ExitBack {
		t.Errorf("Run = %v, %v; expected back", reason, err)
	}
	if script.Remaining() != 1 || g.steps != 2 {
		t.Errorf("remaining=%d steps=%d", script.Remaining(), g.steps)
	}
}

type failingSurface struct{ *BufferSurface }

func (failingSurface) Present() error { return errors.New("terminal gone") }

func TestRunPropagatesPresentError(t *testing.T) {
	s := newSession(&fakeGame{})
	reason, err := s.Run(Holding(3), failingSurface{NewBufferSurface(4, 4)}, core.NewFrameClock(&fakeTime{}))
	if err == nil || reason != ExitQuit {
		t.Errorf("Run = %v, %v; expected quit with error", reason, err)
	}
}

func TestCyberNinjaRestartScenario(t *testing.T) {
	g := cyberninja.New()
	s := newSession(g)

	w := g.World()
	w.Each(world.KindPursuer, func(e *world.Entity) {
		e.Bounds = w.Player.Bounds
	})
	s.Advance(core.NewInputSnapshot())
	if s.Phase() != core.PhaseGameOver {
		t.Fatal("expected forced game over")
	}

	// Input while game over does not move anything.
	before := *g.World()
	s.Advance(core.NewInputSnapshot())
	if g.World().Frame != before.Frame {
		t.Error("game stepped while over")
	}

	s.Advance(pressed(core.KeyR))
	st := g.State()
	if st.Score != 0 || st.Level != 1 || st.GameOver {
		t.Errorf("after restart: %+v", st)
	}
	if g.World().Player.Bounds != core.NewRectF(375, 275, 50, 50) {
		t.Errorf("player at %+v after restart", g.World().Player.Bounds)
	}
	if n := g.World().Count(world.KindPursuer); n != 3 {
		t.Errorf("pursuers = %d after restart", n)
	}
}
