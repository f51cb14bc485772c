package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would use, after applying the config
search path and the --difficulty preset. The output is a valid config file.

Search order:
  1. --config <path>
  2. ~/.invaders/configs/invaders.yaml
  3. ./configs/invaders.yaml
  4. built-in defaults

Examples:
  invaders config
  invaders config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
