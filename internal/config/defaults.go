package config

import (
	_ "embed"
)

//go:embed defaults/cyberninja.yaml
var defaultCyberNinjaYAML []byte

//go:embed defaults/shadowops.yaml
var defaultShadowOpsYAML []byte

//go:embed defaults/input.yaml
var defaultInputYAML []byte

// DefaultCyberNinjaConfig returns the default Cyber Ninja Assault configuration.
func DefaultCyberNinjaConfig() CyberNinjaConfig {
	return CyberNinjaConfig{
		Player: CyberNinjaPlayer{
			Size:  50,
			Speed: 5,
		},
		Pursuers: CyberNinjaPursuers{
			Size:      50,
			BaseSpeed: 2,
			SpeedStep: 0.2,
			CapMargin: 0.5,
			Initial:   3,
			Max:       5,
		},
		Stars: CyberNinjaStars{
			Size:  30,
			Count: 3,
			Value: 50,
		},
		Scoring: Scoring{PerTick: 1},
	}
}

// DefaultShadowOpsConfig returns the default Shadow Ops configuration.
func DefaultShadowOpsConfig() ShadowOpsConfig {
	return ShadowOpsConfig{
		Player: ShadowOpsPlayer{
			Width:        50,
			Height:       50,
			Speed:        7,
			BottomOffset: 60,
		},
		Fallers: ShadowOpsFallers{
			Width:         50,
			Height:        50,
			SpawnInterval: 30,
			BaseSpeed:     4,
			SpeedStep:     0.5,
			ScoreStep:     1000,
		},
		Scoring: Scoring{PerTick: 1},
	}
}

// DefaultInputConfig returns the default input adapter configuration.
func DefaultInputConfig() InputConfig {
	return InputConfig{HoldTicks: 30}
}
