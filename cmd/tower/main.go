// tower is Tower of Time: climb a 20-floor tower in the terminal before the clock runs out.
//
// Usage:
//
//	tower                    - Play (same as 'tower play')
//	tower play               - Play a session
//	tower record             - Show the stored high score
//	tower reset-record       - Delete the stored high score
//	tower config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard
//	--db <path>         - Database path (default: ~/.tower/tower.db)
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-time/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Tower of Time - climb as high as you can before time runs out",
	Long: `Tower of Time is a terminal arcade game. Climb the 20-floor tower
within the time limit. Every floor climbed pays floor x 10 coins, and
the highest floor you ever reached is kept as your record.

Available commands:
  play          - Play a session (default)
  record        - Show the stored high score
  reset-record  - Delete the stored high score
  config        - Print the effective configuration

Examples:
  tower
  tower play --difficulty hard
  tower record
  tower config --config ./my-tower.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints them
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tower/tower.db", "Path to record database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(resetRecordCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the logger for a command.
// The game owns the terminal while playing, so logs only go to --log-file;
// without it they are discarded. The returned closer must be called on exit.
func newLogger() (*log.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tower",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// loadConfig loads the game config with the --difficulty preset applied.
// A config that cannot be read falls back to the defaults with a warning on stderr.
func loadConfig() (config.TowerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TowerConfig{}, err
	}

	cfg, err := config.LoadTower(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	config.ApplyTowerPreset(&cfg, preset)
	return cfg, nil
}
