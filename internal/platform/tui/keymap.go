package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arenablitz/arcade/internal/core"
)

// GameKeyMap defines the key bindings used while a game runs.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
	Back    key.Binding
	Force   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Restart, k.Quit, k.Back, k.Force},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit after game over"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "launcher"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Translate maps a key message to an arcade key. Arrows and their WASD
// aliases stay distinct keys; the game folds them into directions.
// Force-quit keys are reported through quit instead.
func (k GameKeyMap) Translate(msg tea.KeyMsg) (_ core.Key, quit bool) {
	if key.Matches(msg, k.Force) {
		return core.KeyNone, true
	}

	switch msg.String() {
	case "left":
		return core.KeyLeft, false
	case "right":
		return core.KeyRight, false
	case "up":
		return core.KeyUp, false
	case "down":
		return core.KeyDown, false
	case "a", "A":
		return core.KeyA, false
	case "d", "D":
		return core.KeyD, false
	case "w", "W":
		return core.KeyW, false
	case "s", "S":
		return core.KeyS, false
	}

	switch {
	case key.Matches(msg, k.Restart):
		return core.KeyR, false
	case key.Matches(msg, k.Quit):
		return core.KeyQ, false
	case key.Matches(msg, k.Back):
		return core.KeyEscape, false
	case msg.Type == tea.KeyEnter:
		return core.KeyEnter, false
	}
	return core.KeyNone, false
}

// Collector turns the terminal's key-press stream into per-frame input
// snapshots. Terminals report presses and auto-repeats but no releases,
// so a key stays held for holdTicks polls after its latest event. A press
// is reported as Pressed only when the key was not already held.
type Collector struct {
	holdTicks int
	tick      int
	expires   map[core.Key]int // Poll count after which the key is released
	pressed   []core.Key
	quit      bool
}

// NewCollector creates a collector. Non-positive holdTicks hold a key for
// a single frame.
func NewCollector(holdTicks int) *Collector {
	return &Collector{
		holdTicks: max(1, holdTicks),
		expires:   make(map[core.Key]int),
	}
}

// Observe records a key press or auto-repeat.
func (c *Collector) Observe(k core.Key) {
	if k == core.KeyNone {
		return
	}
	if !c.held(k) {
		c.pressed = append(c.pressed, k)
	}
	c.expires[k] = c.tick + c.holdTicks
}

// RequestQuit records a quit event for the next poll.
func (c *Collector) RequestQuit() {
	c.quit = true
}

func (c *Collector) held(k core.Key) bool {
	exp, ok := c.expires[k]
	return ok && exp > c.tick
}

// Poll returns the snapshot for this frame and advances the hold clock.
func (c *Collector) Poll() core.InputSnapshot {
	snap := core.NewInputSnapshot()
	for k, exp := range c.expires {
		if exp > c.tick {
			snap.Hold(k)
		} else {
			delete(c.expires, k)
		}
	}
	snap.Pressed = c.pressed
	snap.QuitRequested = c.quit

	c.pressed = nil
	c.quit = false
	c.tick++
	return snap
}

// Release forgets every held key, used when a session starts or restarts.
func (c *Collector) Release() {
	clear(c.expires)
	c.pressed = nil
}
