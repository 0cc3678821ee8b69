// kingrun is a side-scrolling jump game for the terminal. Lost every life?
// Answer a quiz question to earn one back.
//
// Usage:
//
//	kingrun                  - Title menu (play, high scores, quit)
//	kingrun play             - Start a game directly
//	kingrun scores           - Show the top 10 scores
//	kingrun serve            - Start SSH server for remote play
//	kingrun quiz             - Print the quiz catalog
//	kingrun config           - Print the effective runner config
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config, 50)
//	--seed <value>        - Set RNG seed for reproducible quiz questions
//	--db <path>           - Set database path (default: ~/.kingrun/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kingrun/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game flags, shared by the menu, play and serve
	flagConfig     string
	flagDifficulty string
	flagQuiz       string
	flagAssets     string
	flagMute       bool
	flagVolume     float64
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kingrun",
	Short: "King Run - jump the obstacles in your terminal",
	Long: `King Run is a side-scrolling jump game for the terminal.

Run it without a command to open the title menu.

Available commands:
  play     - Start a game directly
  scores   - View high scores
  serve    - Start SSH server for remote play
  quiz     - Print the quiz catalog
  config   - Print the effective runner config

Examples:
  kingrun
  kingrun play --difficulty hard
  kingrun serve --ssh :2222
  kingrun scores --difficulty easy`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config tick_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagQuiz, "quiz", "", "Path to a quiz catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with sprites (*.txt) and sounds (bg.wav, jumping.wav)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0, "Sound volume 0..1 (0 = default, higher values are capped at 1)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(configCmd)
}
