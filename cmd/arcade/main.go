// arcade is the Arena Blitz launcher: a terminal arcade with Cyber Ninja
// Assault and Shadow Ops.
//
// Usage:
//
//	arcade                   - Start the launcher
//	arcade list              - List available games
//	arcade play <game>       - Play a game directly
//	arcade snapshot <game>   - Run a game headless and print the last frame
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--mute               - Disable sound
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/platform/tui"
	"github.com/arenablitz/arcade/internal/registry"
	"github.com/arenablitz/arcade/internal/session"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arena Blitz - two arcade games in your terminal",
	Long: `Arena Blitz opens a launcher with one button per game. Click a
button (or use the arrow keys and Enter) to play. Escape inside a game
returns to the launcher.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  snapshot  - Run a game headless with scripted input

Examples:
  arcade
  arcade list
  arcade play cyberninja
  arcade snapshot shadowops --frames 120 --hold left`,
	SilenceUsage: true,
	RunE:         runLauncher,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runLauncher(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	loop := launcherLoop{logger: a.logger, launch: a.launch, play: a.play}
	return loop.run(a.runtimeConfig())
}

// launcherLoop alternates between the launcher and the picked game until
// the player quits.
type launcherLoop struct {
	logger *log.Logger
	launch func(cfg core.RuntimeConfig, status string) (tui.LauncherResult, error)
	play   func(id registry.GameID, cfg core.RuntimeConfig) (session.ExitReason, error)
}

// run shows the launcher again after every game that exits with
// ExitBack. A game missing from the catalog only sets the launcher's
// status line; any other failure ends the program.
func (l launcherLoop) run(cfg core.RuntimeConfig) error {
	status := ""
	for {
		res, err := l.launch(cfg, status)
		if err != nil {
			return fmt.Errorf("launcher: %w", err)
		}
		if res.Quit {
			return nil
		}

		// Keep any size changes made while the launcher was open
		cfg.ScreenW, cfg.ScreenH = res.Config.ScreenW, res.Config.ScreenH

		reason, err := l.play(res.Entry.ID, cfg)
		if errors.Is(err, registry.ErrUnknownGame) {
			l.logger.Error("game not available", "game", res.Entry.ID, "error", err)
			status = fmt.Sprintf("Could not start %s", res.Entry.Title)
			continue
		}
		if err != nil {
			return fmt.Errorf("launcher: play %s: %w", res.Entry.ID, err)
		}
		status = ""
		l.logger.Debug("session ended", "game", res.Entry.ID, "reason", reason)

		if reason == session.ExitQuit {
			return nil
		}
	}
}
