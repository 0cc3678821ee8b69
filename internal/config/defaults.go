package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded configuration: a 900x350 world,
// ground at 230, 20ms ticks.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   900,
			Height:  350,
			GroundY: 230,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			JumpImpulse: -19,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  50,
			Height: 50,
		},
		Obstacles: ObstacleConfig{
			Width:     50,
			Height:    50,
			YOffset:   15,
			SpawnGap:  400,
			BaseSpeed: 5,
		},
		Scoring: ScoringConfig{
			SpeedStepEvery:  200,
			SpeedStep:       1,
			CountLosingTick: true,
		},
		Run: RunConfig{
			Lives:  3,
			TickMS: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
