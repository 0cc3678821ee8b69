// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the runner simulation. Distances are in
// world units (pixels of a 900x350 playfield); speeds are units per tick.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity     int `yaml:"gravity"`
	JumpImpulse int `yaml:"jump_impulse"` // negative = up
}

// PlayerConfig defines the player's collision box.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry and spawning.
type ObstacleConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	YOffset   int `yaml:"y_offset"`   // sink below the ground line
	SpawnGap  int `yaml:"spawn_gap"`  // screen-space margin before the next spawn
	BaseSpeed int `yaml:"base_speed"` // initial scroll speed
}

// ScoringConfig defines score-driven speed steps.
type ScoringConfig struct {
	SpeedStepEvery  int  `yaml:"speed_step_every"`
	SpeedStep       int  `yaml:"speed_step"`
	CountLosingTick bool `yaml:"count_losing_tick"` // score the tick that ends a life
}

// RunConfig defines run-level settings.
type RunConfig struct {
	Lives  int `yaml:"lives"`
	TickMS int `yaml:"tick_ms"`
}

// DifficultyConfig toggles the speed progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TickRate returns the number of ticks per second implied by TickMS.
func (c RunnerConfig) TickRate() int {
	if c.Run.TickMS <= 0 {
		return 50
	}
	if c.Run.TickMS >= 1000 {
		return 1
	}
	return 1000 / c.Run.TickMS
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid runner config")

// Validate checks that the configuration describes a playable world.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.Width > 0, "world.width must be positive"},
		{c.World.Height > 0, "world.height must be positive"},
		{c.World.GroundY > 0 && c.World.GroundY <= c.World.Height, "world.ground_y must be inside the world"},
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive"},
		{c.Obstacles.SpawnGap > 0, "obstacles.spawn_gap must be positive"},
		{c.Obstacles.BaseSpeed > 0, "obstacles.base_speed must be positive"},
		{c.Scoring.SpeedStepEvery > 0, "scoring.speed_step_every must be positive"},
		{c.Run.Lives >= 0, "run.lives must not be negative"},
		{c.Run.TickMS > 0 && c.Run.TickMS <= 1000, "run.tick_ms must be between 1 and 1000"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields an empty preset
// meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
