package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arenablitz/arcade/internal/assets"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/session"
)

// GameOptions carries the collaborators of a running game.
type GameOptions struct {
	HoldTicks int         // Frames a key stays held after its last event
	Sounds    assets.Bank // Event sounds; nil plays nothing
	Player    *assets.Player
	Clock     core.TimeSource // nil uses the system clock
}

// Model is the Bubble Tea model for running one game session.
type Model struct {
	session   *session.Session
	screen    *core.Screen
	collector *Collector
	clock     *core.FrameClock
	keys      GameKeyMap
	sounds    assets.Bank
	player    *assets.Player
	tickRate  int
	exit      session.ExitReason
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *session.Session, opts GameOptions) *Model {
	cfg := s.Config()
	return &Model{
		session:   s,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		collector: NewCollector(opts.HoldTicks),
		clock:     core.NewFrameClock(opts.Clock),
		keys:      DefaultGameKeyMap(),
		sounds:    opts.Sounds,
		player:    opts.Player,
		tickRate:  cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.clock, m.tickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k, quit := m.keys.Translate(msg)
		if quit {
			m.collector.RequestQuit()
		}
		m.collector.Observe(k)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame of the session state machine.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	reason, events := m.session.Advance(m.collector.Poll())
	m.sounds.Play(m.player, events)

	for _, ev := range events {
		if ev == core.EventRestart {
			m.collector.Release()
		}
	}

	if reason != session.ExitNone {
		m.exit = reason
		return m, tea.Quit
	}
	return m, tickCmd(m.clock, m.tickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.exit != session.ExitNone {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Exit returns why the session ended, or ExitNone while it runs.
func (m *Model) Exit() session.ExitReason {
	return m.exit
}

// RunGame runs a session in the alternate screen until the player leaves.
func RunGame(s *session.Session, opts GameOptions, progOpts ...tea.ProgramOption) (session.ExitReason, error) {
	model := NewModel(s, opts)

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...)
	if _, err := p.Run(); err != nil {
		return session.ExitQuit, err
	}
	return model.Exit(), nil
}
