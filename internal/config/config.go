// Package config provides YAML-based game configuration loading and
// difficulty presets for the tower game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate when a setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// TowerConfig contains all configuration for the tower game.
type TowerConfig struct {
	Tower   TowerLayout  `yaml:"tower"`
	Timer   TowerTimer   `yaml:"timer"`
	Player  TowerPlayer  `yaml:"player"`
	Rewards TowerRewards `yaml:"rewards"`
	Storage TowerStorage `yaml:"storage"`
}

// TowerLayout defines the shape of the tower.
type TowerLayout struct {
	Height int `yaml:"height"` // Number of floors
}

// TowerTimer defines the session countdown.
type TowerTimer struct {
	GameTime int `yaml:"game_time"` // Seconds per session
}

// TowerPlayer defines horizontal movement, in percent of the floor width.
type TowerPlayer struct {
	StartX int `yaml:"start_x"`
	MinX   int `yaml:"min_x"`
	MaxX   int `yaml:"max_x"`
	Step   int `yaml:"step"`
}

// TowerRewards defines coin payouts.
type TowerRewards struct {
	CoinsPerFloor int `yaml:"coins_per_floor"`
}

// TowerStorage names the persisted high-score slot.
type TowerStorage struct {
	RecordKey string `yaml:"record_key"`
}

// Validate checks that every setting is usable.
func (c TowerConfig) Validate() error {
	switch {
	case c.Tower.Height < 2:
		return fmt.Errorf("%w: tower.height must be at least 2, got %d", ErrInvalid, c.Tower.Height)
	case c.Timer.GameTime < 1:
		return fmt.Errorf("%w: timer.game_time must be positive, got %d", ErrInvalid, c.Timer.GameTime)
	case c.Player.MinX >= c.Player.MaxX:
		return fmt.Errorf("%w: player.min_x (%d) must be below player.max_x (%d)", ErrInvalid, c.Player.MinX, c.Player.MaxX)
	case c.Player.MinX < 0 || c.Player.MaxX > 100:
		return fmt.Errorf("%w: player range [%d, %d] must stay within [0, 100]", ErrInvalid, c.Player.MinX, c.Player.MaxX)
	case c.Player.StartX < c.Player.MinX || c.Player.StartX > c.Player.MaxX:
		return fmt.Errorf("%w: player.start_x %d outside [%d, %d]", ErrInvalid, c.Player.StartX, c.Player.MinX, c.Player.MaxX)
	case c.Player.Step < 1:
		return fmt.Errorf("%w: player.step must be positive, got %d", ErrInvalid, c.Player.Step)
	case c.Rewards.CoinsPerFloor < 0:
		return fmt.Errorf("%w: rewards.coins_per_floor must not be negative, got %d", ErrInvalid, c.Rewards.CoinsPerFloor)
	case c.Storage.RecordKey == "":
		return fmt.Errorf("%w: storage.record_key must not be empty", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// GameTimeForPreset returns the session length in seconds for a preset.
func GameTimeForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 90
	case DifficultyHard:
		return 45
	default:
		return 60
	}
}

// ApplyTowerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyTowerPreset(cfg *TowerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timer.GameTime = GameTimeForPreset(preset)
}
