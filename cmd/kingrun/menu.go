package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kingrun/internal/platform/tui"
	"github.com/vovakirdan/kingrun/internal/storage"
)

// runMenu is the root command: title menu -> game or scores -> menu.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := gameOptions(logger)
	if err != nil {
		return err
	}
	cfg := runtimeConfig(opts.Runner)

	sound := openSound(logger)
	defer sound.Close()
	opts.Sound = sound

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	opts.Store = store

	for {
		high := 0
		if store != nil {
			high, _ = store.HighScore("")
		}

		menuResult, err := tui.RunMenu(cfg, high)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			opts.Runtime = cfg
			// Fresh quiz sequence per game unless --seed pins it
			if flagSeed == 0 {
				opts.Runtime.Seed = time.Now().UnixNano()
			}
			backToMenu, runErr := tui.Run(opts)
			if runErr != nil {
				return fmt.Errorf("running game: %w", runErr)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
