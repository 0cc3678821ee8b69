package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kingrun/internal/platform/tui"
	"github.com/vovakirdan/kingrun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game directly, skipping the title menu.

Controls:
  Enter      - Start
  Space/Up   - Jump
  P          - Pause
  R          - Restart (after game over, costs a life)
  H          - Save Me! (quiz, once all lives are gone)
  Tab        - High scores
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, 5 lives
  normal - Speed 5, 3 lives
  hard   - Speed 7, 2 lives
  fixed  - No speed steps, values from the config

Examples:
  kingrun play
  kingrun play --difficulty hard
  kingrun play --config ./my-runner.yaml
  kingrun play --quiz ./go-quiz.yaml --assets ./pack --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := gameOptions(logger)
	if err != nil {
		return err
	}
	opts.Runtime = runtimeConfig(opts.Runner)

	sound := openSound(logger)
	defer sound.Close()
	opts.Sound = sound

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}
	opts.Store = store

	if _, err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
