package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/arenablitz/arcade/internal/assets"
	"github.com/arenablitz/arcade/internal/config"
	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/games"
	"github.com/arenablitz/arcade/internal/platform/tui"
	"github.com/arenablitz/arcade/internal/registry"
	"github.com/arenablitz/arcade/internal/session"
)

// app holds what every command shares: the logger, the asset loader, the
// game catalog and the audio player.
type app struct {
	logger *log.Logger
	logOut io.Writer // Where the logger writes when no program owns the terminal
	loader *assets.Loader
	games  *registry.Registry
	player *assets.Player
	input  config.InputConfig
}

// newApp wires the arcade together. Audio is opened only when withAudio
// is set and --mute is not.
func newApp(withAudio bool) (*app, error) {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return nil, err
	}

	loader := assets.NewLoader(assets.Embedded(), logger)
	catalog, err := games.Catalog(loader, logger)
	if err != nil {
		return nil, err
	}

	input, err := config.LoadInput()
	if err != nil {
		logger.Warn("using default input tuning", "error", err)
	}

	player := assets.NewPlayer(logger, flagMute || !withAudio)
	if withAudio && !flagMute {
		// Failure is logged by the player; the game runs silent
		_ = player.Init()
	}

	return &app{
		logger: logger,
		logOut: os.Stderr,
		loader: loader,
		games:  catalog,
		player: player,
		input:  input,
	}, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

func (a *app) close() {
	a.player.Close()
}

// runtimeConfig builds the runtime config for the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		a.logger.Debug("terminal size unknown, using defaults", "error", err)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// holdLogs buffers log output while a Bubble Tea program draws on the
// terminal, since stderr is the same screen. The returned func restores
// the output and writes out everything logged in between.
func (a *app) holdLogs() (release func()) {
	var buf bytes.Buffer
	a.logger.SetOutput(&buf)
	return func() {
		a.logger.SetOutput(a.logOut)
		_, _ = buf.WriteTo(a.logOut)
	}
}

// launch shows the launcher once.
func (a *app) launch(cfg core.RuntimeConfig, status string) (tui.LauncherResult, error) {
	defer a.holdLogs()()

	return tui.RunLauncher(a.games.Entries(), cfg, tui.LauncherOptions{
		Logger: a.logger,
		Player: a.player,
		Status: status,
	})
}

// play runs one interactive session of the game.
func (a *app) play(id registry.GameID, cfg core.RuntimeConfig) (session.ExitReason, error) {
	game, err := a.games.Create(id)
	if err != nil {
		return session.ExitQuit, err
	}

	defer a.holdLogs()()

	s := session.New(game, cfg, session.WithEventHandler(func(events []core.Event) {
		a.logger.Debug("game events", "game", id, "events", events)
	}))
	a.logger.Info("session started", "game", id, "seed", s.Config().Seed)

	return tui.RunGame(s, tui.GameOptions{
		HoldTicks: a.input.HoldTicks,
		Sounds:    assets.LoadBank(a.loader, id.String()),
		Player:    a.player,
	})
}
