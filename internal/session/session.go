// Package session runs one game from launch until the player leaves. It
// owns the PLAYING / GAME_OVER state machine and the headless frame loop:
// poll input, step, render, present, wait for the next tick.
package session

import (
	"fmt"
	"time"

	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/registry"
)

// ExitReason tells the launcher why a session ended.
type ExitReason int

const (
	// ExitNone means the session is still running.
	ExitNone ExitReason = iota
	// ExitBack returns to the launcher.
	ExitBack
	// ExitQuit ends the program.
	ExitQuit
)

// String returns a human-readable name for the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitNone:
		return "none"
	case ExitBack:
		return "back"
	case ExitQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Surface is the display a headless loop renders into.
type Surface interface {
	// Screen returns the buffer the next frame is drawn into.
	Screen() *core.Screen
	// Present shows the drawn frame.
	Present() error
}

// Option configures a Session.
type Option func(*Session)

// WithSeeder sets the source of RNG seeds for restarts.
func WithSeeder(seed func() int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithEventHandler registers a callback for the events of every frame.
func WithEventHandler(fn func([]core.Event)) Option {
	return func(s *Session) { s.onEvents = fn }
}

// Session drives a single game.
type Session struct {
	game     registry.Game
	cfg      core.RuntimeConfig
	seed     func() int64
	onEvents func([]core.Event)
	restarts int
}

// New resets game and wraps it in a session. A zero seed in cfg is
// replaced by one from the seeder.
func New(game registry.Game, cfg core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{
		game: game,
		cfg:  cfg,
		seed: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.Seed == 0 {
		s.cfg.Seed = s.seed()
	}
	if s.cfg.TickRate <= 0 {
		s.cfg.TickRate = core.DefaultTickHz
	}
	s.game.Reset(s.cfg)
	return s
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime configuration of the current run.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Phase returns the current state machine position.
func (s *Session) Phase() core.Phase {
	return s.game.State().Phase()
}

// Restarts returns how many times the game was restarted.
func (s *Session) Restarts() int {
	return s.restarts
}

// Advance applies one frame of input. A quit event ends the program and
// Escape returns to the launcher from any phase. While playing the game
// steps; after game over only R (restart) and Q (quit) are honoured.
func (s *Session) Advance(in core.InputSnapshot) (ExitReason, []core.Event) {
	if in.QuitRequested {
		return ExitQuit, nil
	}
	if in.WasPressed(core.KeyEscape) {
		return ExitBack, nil
	}

	var events []core.Event
	if s.game.State().GameOver {
		switch {
		case in.WasPressed(core.KeyR):
			s.restart()
			events = []core.Event{core.EventRestart}
		case in.WasPressed(core.KeyQ):
			return ExitQuit, nil
		}
	} else {
		events = s.game.Step(in).Events
	}

	if len(events) > 0 && s.onEvents != nil {
		s.onEvents(events)
	}
	return ExitNone, events
}

// restart fully re-initializes the game with a fresh seed.
func (s *Session) restart() {
	s.cfg.Seed = s.seed()
	s.game.Reset(s.cfg)
	s.restarts++
}

// Resize updates the cell grid size passed to future resets.
func (s *Session) Resize(cols, rows int) {
	s.cfg.ScreenW = cols
	s.cfg.ScreenH = rows
}

// Render draws the current frame.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
}

// Run loops until the session exits: poll, advance, render, present,
// then block on the clock. It returns the exit reason, or ExitQuit with
// the error when presenting fails.
func (s *Session) Run(src core.InputSource, dst Surface, clock *core.FrameClock) (ExitReason, error) {
	for {
		reason, _ := s.Advance(src.Poll())
		if reason != ExitNone {
			return reason, nil
		}

		s.Render(dst.Screen())
		if err := dst.Present(); err != nil {
			return ExitQuit, fmt.Errorf("session: present frame: %w", err)
		}

		clock.Tick(s.cfg.TickRate)
	}
}
