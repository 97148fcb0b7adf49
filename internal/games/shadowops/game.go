// Package shadowops implements Shadow Ops: slide along the bottom of the
// screen and dodge enemies that drop from above, faster as the score grows.
package shadowops

import (
	"image"

	"github.com/arenablitz/arcade/internal/config"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/registry"
	"github.com/arenablitz/arcade/internal/world"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.ShadowOpsConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithBackground sets the image stretched behind the playfield.
func WithBackground(img image.Image) Option {
	return func(g *Game) { g.backdrop = core.NewBackdrop(img, backgroundBase) }
}

// Game implements Shadow Ops.
type Game struct {
	cfg     config.ShadowOpsConfig
	rt      core.RuntimeConfig
	bounds  core.RectF
	spawner *world.Spawner
	state   world.State

	backdrop *core.Backdrop
}

// New creates a new Shadow Ops instance.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultShadowOpsConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.backdrop == nil {
		g.backdrop = core.NewBackdrop(nil, backgroundBase)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the enumerated identifier for this game.
func (g *Game) ID() registry.GameID {
	return registry.ShadowOps
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shadow Ops"
}

// Reset clears all fallers and puts the player back at the horizontal
// center of its row with score 0.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.bounds = cfg.Bounds()

	fc := g.cfg.Fallers
	if g.spawner == nil {
		g.spawner = world.NewSpawner(cfg.Seed, fc.SpawnInterval, fc.Width, fc.Height)
	} else {
		g.spawner.Reset(cfg.Seed)
	}

	pc := g.cfg.Player
	player := world.NewPlayer(core.NewRectF(
		g.bounds.W/2,
		g.bounds.Bottom()-pc.BottomOffset,
		pc.Width, pc.Height,
	), pc.Speed)

	g.state = world.NewState(player)
	g.state.DifficultySpeed = fc.BaseSpeed
}

// Step advances the game by one tick. Existing fallers move and are tested
// against the player before this frame's spawn, so a new faller is first
// seen just above the screen.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.state.Frame++
	var events []core.Event

	world.MovePlayer(&g.state.Player, in.Direction().Horizontal(), g.cfg.Player.Speed, g.bounds)

	fc := g.cfg.Fallers
	speed := world.StepSpeed(fc.BaseSpeed, fc.SpeedStep, g.state.Score, fc.ScoreStep)
	g.state.DifficultySpeed = speed
	g.state.Each(world.KindFaller, func(e *world.Entity) {
		e.Speed = speed
		world.Fall(e, speed)
	})

	out := world.Resolve(&g.state.Player, g.state.Entities)

	g.state.RemoveIf(func(e *world.Entity) bool {
		return world.BelowScreen(e, g.bounds)
	})

	if f, ok := g.spawner.Tick(g.state.Frame, g.bounds, speed); ok {
		g.state.Add(f)
	}

	g.state.AddScore(g.cfg.Scoring.PerTick)

	if out.Collided && g.state.EndGame() {
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state.Snapshot()
}

// World exposes the simulation state for inspection.
func (g *Game) World() *world.State {
	return &g.state
}
