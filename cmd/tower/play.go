package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tower-time/internal/core"
	"github.com/vovakirdan/tower-time/internal/games/tower"
	"github.com/vovakirdan/tower-time/internal/platform/tui"
	"github.com/vovakirdan/tower-time/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tower of Time",
	Long: `Start a game of Tower of Time.

Controls:
  Up/Space    - Climb one floor
  Down        - Descend one floor
  Left/Right  - Move along the platform
  Enter       - Start / play again
  R           - Play again (after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 90 seconds
  normal - 60 seconds
  hard   - 45 seconds

Examples:
  tower play
  tower play --difficulty hard
  tower play --config ./my-tower.yaml --log-file ./tower.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Get terminal size, falling back to 80x24
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open record storage
	var slots tower.SlotStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open record database: %v\n", err)
		logger.Warn("record kept in memory only", "error", err)
		// Continue without durable storage - the game still works
		slots = storage.NewMemory()
	} else {
		defer store.Close()
		slots = store
	}

	game := tower.New(gameCfg, slots)
	logger.Debug("game ready",
		"height", game.Config().Tower.Height,
		"seconds", game.Config().Timer.GameTime,
		"record", game.HighScore(),
	)

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
