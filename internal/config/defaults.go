package config

import (
	_ "embed"
)

//go:embed defaults/tower.yaml
var defaultTowerYAML []byte

// DefaultTowerConfig returns the default tower configuration.
func DefaultTowerConfig() TowerConfig {
	return TowerConfig{
		Tower: TowerLayout{
			Height: 20,
		},
		Timer: TowerTimer{
			GameTime: 60,
		},
		Player: TowerPlayer{
			StartX: 50,
			MinX:   10,
			MaxX:   90,
			Step:   10,
		},
		Rewards: TowerRewards{
			CoinsPerFloor: 10,
		},
		Storage: TowerStorage{
			RecordKey: "towerGameHighScore",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTowerYAML
}
