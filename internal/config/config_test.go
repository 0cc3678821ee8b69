package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestDefaultRunnerConfigIsValid(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.TickRate() != 50 {
		t.Errorf("TickRate() = %d, expected 50", cfg.TickRate())
	}
}

func TestTickMSBounds(t *testing.T) {
	tests := []struct {
		tickMS int
		rate   int
		valid  bool
	}{
		{20, 50, true},
		{1000, 1, true},
		{1500, 1, false},
		{0, 50, false},
	}
	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.tickMS), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			cfg.Run.TickMS = tc.tickMS
			if got := cfg.TickRate(); got != tc.rate {
				t.Errorf("TickRate() = %d, expected %d", got, tc.rate)
			}
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults differ from hardcoded:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("obstacles:\n  base_speed: 9\nrun:\n  lives: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Obstacles.BaseSpeed != 9 {
		t.Errorf("base speed = %d, expected 9", cfg.Obstacles.BaseSpeed)
	}
	if cfg.Run.Lives != 1 {
		t.Errorf("lives = %d, expected 1", cfg.Run.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.World.GroundY != 230 {
		t.Errorf("ground_y = %d, expected default 230", cfg.World.GroundY)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		speed   int
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 4, 5, true},
		{DifficultyNormal, 5, 3, true},
		{DifficultyHard, 7, 2, true},
		{DifficultyFixed, 5, 3, false},
		{"", 5, 3, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Obstacles.BaseSpeed != tc.speed || cfg.Run.Lives != tc.lives || cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("preset %q gave speed=%d lives=%d enabled=%v", tc.preset,
					cfg.Obstacles.BaseSpeed, cfg.Run.Lives, cfg.Difficulty.Enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestMarshalRoundTripKeepsSpeedStep(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := parseRunner(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoring.SpeedStepEvery != 200 {
		t.Errorf("speed_step_every = %d after round trip", cfg.Scoring.SpeedStepEvery)
	}
}
