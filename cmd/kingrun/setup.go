package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/kingrun/internal/assets"
	"github.com/vovakirdan/kingrun/internal/audio"
	"github.com/vovakirdan/kingrun/internal/audio/beepaudio"
	"github.com/vovakirdan/kingrun/internal/config"
	"github.com/vovakirdan/kingrun/internal/core"
	"github.com/vovakirdan/kingrun/internal/platform/tui"
	"github.com/vovakirdan/kingrun/internal/quiz"
)

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openFileLogger logs to ~/.kingrun/kingrun.log so the alternate screen stays
// clean. The returned closer must be called on exit.
func openFileLogger() (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		logger, lerr := newLogger(io.Discard, "kingrun")
		return logger, func() {}, lerr
	}

	dir := filepath.Join(home, ".kingrun")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "kingrun.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, "kingrun")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// loadRunnerConfig loads the YAML config and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, preset, nil
}

// loadCatalog returns the --quiz catalog or the built-in one.
func loadCatalog() (quiz.Catalog, error) {
	if flagQuiz == "" {
		return quiz.DefaultCatalog(), nil
	}
	return quiz.LoadCatalog(flagQuiz)
}

// gameOptions builds the session template shared by play, the menu and serve.
// Sound, store and runtime are left to the caller.
func gameOptions(logger *log.Logger) (tui.GameOptions, error) {
	cfg, preset, err := loadRunnerConfig()
	if err != nil {
		return tui.GameOptions{}, err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return tui.GameOptions{}, err
	}

	difficulty := string(preset)
	if difficulty == "" && flagConfig == "" {
		difficulty = string(config.DifficultyNormal)
	}

	return tui.GameOptions{
		Runner:     cfg,
		Difficulty: difficulty,
		Catalog:    catalog,
		Sprites:    assets.Load(assets.Source(flagAssets), logger),
		Logger:     logger,
		Player:     playerName(),
	}, nil
}

// openSound opens the speaker unless --mute is set. Failures degrade to silence.
func openSound(logger *log.Logger) audio.Device {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !flagMute
	if flagVolume > 0 {
		cfg.Volume = flagVolume
	}
	cfg.Volume = cfg.ClampedVolume()
	return beepaudio.Open(cfg, assets.Source(flagAssets), logger)
}

// runtimeConfig measures the terminal and applies --fps and --seed.
func runtimeConfig(cfg config.RunnerConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	return rc
}

// playerName returns --player or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
