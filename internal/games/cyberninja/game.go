// Package cyberninja implements Cyber Ninja Assault: dodge the red boxes
// that chase you around the arena while collecting waves of stars.
package cyberninja

import (
	"image"
	"math/rand"

	"github.com/arenablitz/arcade/internal/config"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/registry"
	"github.com/arenablitz/arcade/internal/world"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.CyberNinjaConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithBackground sets the image stretched behind the arena.
func WithBackground(img image.Image) Option {
	return func(g *Game) { g.backdrop = core.NewBackdrop(img, backgroundBase) }
}

// Game implements Cyber Ninja Assault.
type Game struct {
	cfg    config.CyberNinjaConfig
	rt     core.RuntimeConfig
	bounds core.RectF
	rng    *rand.Rand
	state  world.State

	waveStars  int // Stars collected in the current wave
	totalStars int // Stars collected since the last reset

	backdrop *core.Backdrop
}

// New creates a new Cyber Ninja Assault instance.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultCyberNinjaConfig()}
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
	return registry.CyberNinja
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cyber Ninja Assault"
}

// Reset restores the initial layout: player centered, the initial pursuers
// and a fresh wave of stars, score 0 and level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.bounds = cfg.Bounds()
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	size := g.cfg.Player.Size
	center := g.bounds.Center()
	player := world.NewPlayer(core.NewRectF(center.X-size/2, center.Y-size/2, size, size), g.cfg.Player.Speed)

	g.state = world.NewState(player)
	g.state.DifficultySpeed = g.cfg.Pursuers.BaseSpeed
	for i := 0; i < g.cfg.Pursuers.Initial; i++ {
		g.spawnPursuer()
	}
	g.spawnStars()

	g.waveStars = 0
	g.totalStars = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	g.state.Frame++
	var events []core.Event

	world.MovePlayer(&g.state.Player, in.Direction(), g.cfg.Player.Speed, g.bounds)

	target := g.state.Player.Bounds.Pos()
	g.state.Each(world.KindPursuer, func(e *world.Entity) {
		world.Chase(e, target, e.Speed)
	})

	out := world.Resolve(&g.state.Player, g.state.Entities)
	if len(out.Collected) > 0 {
		g.state.AddScore(out.Points)
		g.waveStars += len(out.Collected)
		g.totalStars += len(out.Collected)
		events = append(events, core.EventCollect)
	}

	if g.state.AllCollected() {
		g.advanceWave()
		events = append(events, core.EventWaveCleared)
	}

	g.state.AddScore(g.cfg.Scoring.PerTick)

	if out.Collided && g.state.EndGame() {
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// advanceWave replaces the collected stars, adds a pursuer while below the
// maximum and speeds every pursuer up, capped below the player's speed.
func (g *Game) advanceWave() {
	g.state.Level++
	g.state.RemoveIf(func(e *world.Entity) bool { return e.Kind == world.KindCollectible })
	g.spawnStars()
	g.waveStars = 0

	if g.state.Count(world.KindPursuer) < g.cfg.Pursuers.Max {
		g.spawnPursuer()
	}

	g.state.DifficultySpeed = world.RaiseCapped(g.state.DifficultySpeed, g.cfg.Pursuers.SpeedStep, g.cfg.PursuerSpeedCap())
	speed := g.state.DifficultySpeed
	g.state.Each(world.KindPursuer, func(e *world.Entity) { e.Speed = speed })
}

func (g *Game) spawnPursuer() {
	size := g.cfg.Pursuers.Size
	bounds := world.RandomRect(g.rng, g.bounds, size, size, 0)
	g.state.Add(world.NewPursuer(bounds, g.state.DifficultySpeed))
}

// spawnStars places a full wave; stars keep half their size from the edges.
func (g *Game) spawnStars() {
	size := g.cfg.Stars.Size
	for i := 0; i < g.cfg.Stars.Count; i++ {
		bounds := world.RandomRect(g.rng, g.bounds, size, size, size/2)
		g.state.Add(world.NewCollectible(bounds, g.cfg.Stars.Value))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state.Snapshot()
}

// World exposes the simulation state for inspection.
func (g *Game) World() *world.State {
	return &g.state
}

// Stars returns the stars collected this wave and since the last reset.
func (g *Game) Stars() (wave, total int) {
	return g.waveStars, g.totalStars
}
