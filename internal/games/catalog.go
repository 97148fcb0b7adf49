// Package games assembles the static game catalog shown by the launcher.
package games

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/arenablitz/arcade/internal/assets"
	"github.com/arenablitz/arcade/internal/config"
	"github.com/arenablitz/arcade/internal/games/cyberninja"
	"github.com/arenablitz/arcade/internal/games/shadowops"
	"github.com/arenablitz/arcade/internal/registry"
)

// Catalog builds the registry of every game, in launcher order. Tuning
// comes from the embedded YAML and backgrounds from the asset loader; any
// failure falls back to defaults and is logged.
func Catalog(loader *assets.Loader, logger *log.Logger) (*registry.Registry, error) {
	cnCfg, err := config.LoadCyberNinja()
	if err != nil {
		logger.Warn("using default tuning", "game", registry.CyberNinja, "error", err)
	}
	soCfg, err := config.LoadShadowOps()
	if err != nil {
		logger.Warn("using default tuning", "game", registry.ShadowOps, "error", err)
	}

	cnBG := loader.Image(registry.CyberNinja.String(), "bg.png")
	soBG := loader.Image(registry.ShadowOps.String(), "bg.png")

	r, err := registry.New(
		registry.Entry{
			ID:    registry.CyberNinja,
			Title: "Cyber Ninja Assault",
			New: func() registry.Game {
				return cyberninja.New(cyberninja.WithConfig(cnCfg), cyberninja.WithBackground(cnBG))
			},
		},
		registry.Entry{
			ID:    registry.ShadowOps,
			Title: "Shadow Ops",
			New: func() registry.Game {
				return shadowops.New(shadowops.WithConfig(soCfg), shadowops.WithBackground(soBG))
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("games: build catalog: %w", err)
	}
	return r, nil
}
