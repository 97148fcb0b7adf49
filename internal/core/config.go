package core

// Logical resolutions. Games simulate in logical pixels; the platform
// projects them onto whatever cell grid the terminal offers.
const (
	GameWidth      = 800
	GameHeight     = 600
	LauncherWidth  = 900
	LauncherHeight = 650
	DefaultTickHz  = 60
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	LogicalW float64 // Simulation width in logical pixels
	LogicalH float64 // Simulation height in logical pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		LogicalW: GameWidth,
		LogicalH: GameHeight,
		TickRate: DefaultTickHz,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the logical play area.
func (c RuntimeConfig) Bounds() RectF {
	w, h := c.LogicalW, c.LogicalH
	if w <= 0 || h <= 0 {
		w, h = GameWidth, GameHeight
	}
	return NewRectF(0, 0, w, h)
}

// Phase is the session state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int // Current score
	Level    int // Current wave/level, starting at 1
	GameOver bool
}

// Phase derives the state machine position from the game state.
func (s GameState) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Event is something noteworthy that happened during a tick. The platform
// turns events into sound; they never feed back into game state.
type Event int

const (
	EventCollect Event = iota + 1
	EventWaveCleared
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCollect:
		return "collect"
	case EventWaveCleared:
		return "wave"
	case EventGameOver:
		return "gameover"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
