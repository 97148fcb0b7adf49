// Package config provides YAML-based game tuning for the arcade platform.
// Tuning is compiled into the binary; nothing is read from disk at runtime.
package config

import (
	"errors"
	"fmt"
)

// CyberNinjaConfig contains all tuning for Cyber Ninja Assault.
type CyberNinjaConfig struct {
	Player   CyberNinjaPlayer   `yaml:"player"`
	Pursuers CyberNinjaPursuers `yaml:"pursuers"`
	Stars    CyberNinjaStars    `yaml:"stars"`
	Scoring  Scoring            `yaml:"scoring"`
}

// CyberNinjaPlayer defines the player box and speed.
type CyberNinjaPlayer struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
}

// CyberNinjaPursuers defines the chasing enemies.
type CyberNinjaPursuers struct {
	Size      float64 `yaml:"size"`
	BaseSpeed float64 `yaml:"base_speed"`
	SpeedStep float64 `yaml:"speed_step"` // Added per cleared wave
	CapMargin float64 `yaml:"cap_margin"` // Speed stays at most player speed minus this
	Initial   int     `yaml:"initial"`
	Max       int     `yaml:"max"`
}

// CyberNinjaStars defines the collectibles.
type CyberNinjaStars struct {
	Size  float64 `yaml:"size"`
	Count int     `yaml:"count"`
	Value int     `yaml:"value"`
}

// Scoring defines passive score gain.
type Scoring struct {
	PerTick int `yaml:"per_tick"` // Points for every frame survived
}

// ShadowOpsConfig contains all tuning for Shadow Ops.
type ShadowOpsConfig struct {
	Player  ShadowOpsPlayer  `yaml:"player"`
	Fallers ShadowOpsFallers `yaml:"fallers"`
	Scoring Scoring          `yaml:"scoring"`
}

// ShadowOpsPlayer defines the player box and speed.
type ShadowOpsPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the screen bottom to the player's top
}

// ShadowOpsFallers defines the falling enemies.
type ShadowOpsFallers struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedStep     float64 `yaml:"speed_step"` // Added every ScoreStep points
	ScoreStep     int     `yaml:"score_step"`
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	// HoldTicks is how long a key counts as held after its latest press or
	// auto-repeat, since terminals send no key-release events.
	HoldTicks int `yaml:"hold_ticks"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, field, v)
}

// Validate checks that the tuning can drive a playable game.
func (c CyberNinjaConfig) Validate() error {
	switch {
	case c.Player.Size <= 0:
		return invalid("player.size", c.Player.Size)
	case c.Player.Speed <= 0:
		return invalid("player.speed", c.Player.Speed)
	case c.Pursuers.Size <= 0:
		return invalid("pursuers.size", c.Pursuers.Size)
	case c.Pursuers.BaseSpeed <= 0:
		return invalid("pursuers.base_speed", c.Pursuers.BaseSpeed)
	case c.Pursuers.SpeedStep < 0:
		return invalid("pursuers.speed_step", c.Pursuers.SpeedStep)
	case c.Pursuers.CapMargin <= 0:
		return invalid("pursuers.cap_margin", c.Pursuers.CapMargin)
	case c.Pursuers.BaseSpeed > c.PursuerSpeedCap():
		return invalid("pursuers.base_speed", c.Pursuers.BaseSpeed)
	case c.Pursuers.Initial < 0 || c.Pursuers.Max < c.Pursuers.Initial:
		return invalid("pursuers.max", c.Pursuers.Max)
	case c.Stars.Size <= 0:
		return invalid("stars.size", c.Stars.Size)
	case c.Stars.Count <= 0:
		return invalid("stars.count", c.Stars.Count)
	case c.Stars.Value < 0:
		return invalid("stars.value", c.Stars.Value)
	case c.Scoring.PerTick < 0:
		return invalid("scoring.per_tick", c.Scoring.PerTick)
	}
	return nil
}

// PursuerSpeedCap is the highest pursuer speed, strictly below the player's.
func (c CyberNinjaConfig) PursuerSpeedCap() float64 {
	return c.Player.Speed - c.Pursuers.CapMargin
}

// Validate checks that the tuning can drive a playable game.
func (c ShadowOpsConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player.width/height", c.Player.Width)
	case c.Player.Speed <= 0:
		return invalid("player.speed", c.Player.Speed)
	case c.Player.BottomOffset < c.Player.Height:
		return invalid("player.bottom_offset", c.Player.BottomOffset)
	case c.Fallers.Width <= 0 || c.Fallers.Height <= 0:
		return invalid("fallers.width/height", c.Fallers.Width)
	case c.Fallers.SpawnInterval <= 0:
		return invalid("fallers.spawn_interval", c.Fallers.SpawnInterval)
	case c.Fallers.BaseSpeed <= 0:
		return invalid("fallers.base_speed", c.Fallers.BaseSpeed)
	case c.Fallers.SpeedStep < 0:
		return invalid("fallers.speed_step", c.Fallers.SpeedStep)
	case c.Fallers.ScoreStep <= 0:
		return invalid("fallers.score_step", c.Fallers.ScoreStep)
	case c.Scoring.PerTick < 0:
		return invalid("scoring.per_tick", c.Scoring.PerTick)
	}
	return nil
}

// Validate checks the input tuning.
func (c InputConfig) Validate() error {
	if c.HoldTicks <= 0 {
		return invalid("input.hold_ticks", c.HoldTicks)
	}
	return nil
}
