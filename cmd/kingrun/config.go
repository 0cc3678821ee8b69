package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kingrun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner config",
	Long: `Print the runner configuration after loading YAML and applying
--difficulty. The output is a valid config file.

Search order:
  1. --config path
  2. ~/.kingrun/configs/runner.yaml
  3. ./configs/runner.yaml
  4. built-in defaults

Examples:
  kingrun config
  kingrun config --difficulty hard > ~/.kingrun/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
