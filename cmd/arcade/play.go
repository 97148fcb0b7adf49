package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arenablitz/arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game without the launcher.

Controls:
  Arrows/WASD  - Move (Shadow Ops: left/right only)
  R            - Restart (after game over)
  Q            - Quit (after game over)
  Esc          - Leave the game
  Ctrl+C       - Quit

Examples:
  arcade play cyberninja
  arcade play shadowops --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := registry.ParseGameID(args[0])
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if err != nil {
		return err
	}

	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.play(id, a.runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}
