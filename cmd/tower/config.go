package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-time/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would use, as YAML.

The config is searched in order: --config path, ~/.tower/configs/tower.yaml,
./configs/tower.yaml, then the built-in defaults. A --difficulty preset is
applied on top.

Examples:
  tower config
  tower config --difficulty easy > ~/.tower/configs/tower.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
