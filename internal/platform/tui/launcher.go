package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/arenablitz/arcade/internal/assets"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/registry"
)

// Launcher layout in logical pixels of the 900x650 launcher space.
const (
	launcherTitle = "Arena Blitz Game Launcher"
	titleY        = 50
	buttonWidth   = 350
	buttonHeight  = 70
	buttonSpacing = 30
	buttonTop     = 180
)

var (
	launcherBG      = [3]uint8{25, 35, 60}
	buttonBase      = [3]uint8{45, 85, 135}
	buttonHoverBase = [3]uint8{65, 125, 185}
	white           = [3]uint8{255, 255, 255}

	launcherTextColor = core.RGB(220, 220, 255)
	titleShadowColor  = core.RGB(20, 20, 30)
	buttonTextColor   = core.RGB(240, 240, 255)
	accentColor       = core.RGB(255, 165, 0)
)

// highlightTint is how far the top band of a button is blended toward white.
const highlightTint = 0.2

// LauncherKeyMap defines the key bindings for the launcher.
type LauncherKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultLauncherKeyMap returns default key bindings.
func DefaultLauncherKeyMap() LauncherKeyMap {
	return LauncherKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/click", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ButtonRect returns the hit box of the i-th game button.
func ButtonRect(i int) core.RectF {
	return core.NewRectF(
		(core.LauncherWidth-buttonWidth)/2,
		float64(buttonTop+i*(buttonHeight+buttonSpacing)),
		buttonWidth, buttonHeight,
	)
}

// LauncherResult is what the player picked.
type LauncherResult struct {
	Entry  registry.Entry
	Quit   bool
	Config core.RuntimeConfig // Carries the latest terminal size
}

// LauncherOptions carries the launcher's collaborators.
type LauncherOptions struct {
	Logger *log.Logger
	Player *assets.Player // Click feedback; nil is silent
	Status string         // Line shown under the buttons, e.g. a launch error
}

// Launcher is the Bubble Tea model of the game picker. The mouse hovers
// and clicks buttons; arrows and Enter work as a keyboard fallback.
type Launcher struct {
	entries []registry.Entry
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    LauncherKeyMap
	help    help.Model
	opts    LauncherOptions

	hover  int // Button under the mouse, -1 for none
	cursor int // Keyboard selection
	chosen int // Launched button, -1 until chosen
	quit   bool
}

// NewLauncher creates a launcher for entries.
func NewLauncher(entries []registry.Entry, cfg core.RuntimeConfig, opts LauncherOptions) *Launcher {
	l := &Launcher{
		entries: entries,
		config:  cfg,
		keys:    DefaultLauncherKeyMap(),
		help:    help.New(),
		opts:    opts,
		hover:   -1,
		chosen:  -1,
	}
	l.screen = core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1))
	return l
}

// Init initializes the launcher.
func (l *Launcher) Init() tea.Cmd {
	return nil
}

// Update handles messages for the launcher.
func (l *Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKey(msg)

	case tea.MouseMsg:
		return l.handleMouse(msg)

	case tea.WindowSizeMsg:
		l.config.ScreenW = msg.Width
		l.config.ScreenH = msg.Height
		l.screen.Resize(msg.Width, max(1, msg.Height-1))
		l.help.Width = msg.Width
	}
	return l, nil
}

func (l *Launcher) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, l.keys.Quit):
		l.quit = true
		return l, tea.Quit
	case key.Matches(msg, l.keys.Up):
		l.hover = -1
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, l.keys.Down):
		l.hover = -1
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		}
	case key.Matches(msg, l.keys.Select):
		return l.choose(l.cursor)
	}
	return l, nil
}

func (l *Launcher) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	idx := l.HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		l.hover = idx
		if idx >= 0 {
			l.cursor = idx
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && idx >= 0 {
			return l.choose(idx)
		}
	}
	return l, nil
}

// HitTest returns the button under a terminal cell, or -1.
func (l *Launcher) HitTest(col, row int) int {
	p := l.viewport().Logical(col, row)
	for i := range l.entries {
		if ButtonRect(i).Contains(p) {
			return i
		}
	}
	return -1
}

func (l *Launcher) viewport() core.Viewport {
	return core.NewViewport(core.LauncherWidth, core.LauncherHeight, l.screen)
}

func (l *Launcher) choose(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(l.entries) {
		return l, nil
	}
	l.chosen = i
	if l.opts.Player != nil {
		l.opts.Player.Tone(660, 60*time.Millisecond)
	}
	if l.opts.Logger != nil {
		l.opts.Logger.Info("launching game", "game", l.entries[i].Title)
	}
	return l, tea.Quit
}

// highlighted returns the button drawn as hovered.
func (l *Launcher) highlighted() int {
	if l.hover >= 0 {
		return l.hover
	}
	return l.cursor
}

// Result returns the launcher outcome once the program has exited.
func (l *Launcher) Result() LauncherResult {
	res := LauncherResult{Quit: l.quit || l.chosen < 0, Config: l.config}
	if l.chosen >= 0 {
		res.Entry = l.entries[l.chosen]
	}
	return res
}

// Draw renders the launcher into its screen buffer.
func (l *Launcher) Draw() *core.Screen {
	s := l.screen
	vp := l.viewport()

	for y := 0; y < s.Height(); y++ {
		bg := core.Gradient(launcherBG, y, s.Height())
		s.FillRect(core.NewRect(0, y, s.Width(), 1), core.Cell{Rune: ' ', Bg: bg})
	}

	row := vp.Line(titleY)
	x := (s.Width() - len(launcherTitle)) / 2
	s.DrawTextColor(x+1, row+1, launcherTitle, titleShadowColor)
	s.DrawTextColor(x, row, launcherTitle, launcherTextColor)

	hi := l.highlighted()
	for i, e := range l.entries {
		r := vp.Project(ButtonRect(i))
		base := buttonBase
		if i == hi {
			base = buttonHoverBase
			s.FillRect(r.Inflate(1, 0), core.Cell{Rune: ' ', Bg: accentColor})
		}
		s.FillRect(r, core.Cell{Rune: ' ', Bg: core.RGB(base[0], base[1], base[2])})

		_, cy := r.Center()
		if r.H >= 3 {
			band := core.Blend(base, white, highlightTint)
			s.FillRect(core.NewRect(r.X, r.Y, r.W, 1), core.Cell{Rune: ' ', Bg: band})
		}
		s.DrawTextColor(r.X+(r.W-len(e.Title))/2, cy, e.Title, buttonTextColor)
	}

	if l.opts.Status != "" {
		last := vp.Project(ButtonRect(len(l.entries)))
		s.DrawTextCentered(last.Y, l.opts.Status, accentColor)
	}
	return s
}

// View renders the launcher with a help footer.
func (l *Launcher) View() string {
	if l.quit || l.chosen >= 0 {
		return ""
	}
	return RenderScreen(l.Draw()) + "\n" + l.help.View(l.keys)
}

// RunLauncher shows the launcher until a game is picked or the player quits.
func RunLauncher(entries []registry.Entry, cfg core.RuntimeConfig, opts LauncherOptions) (LauncherResult, error) {
	l := NewLauncher(entries, cfg, opts)

	p := tea.NewProgram(l, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return LauncherResult{Quit: true, Config: l.config}, err
	}
	return l.Result(), nil
}
