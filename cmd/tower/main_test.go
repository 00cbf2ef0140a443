package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAppliesDifficulty(t *testing.T) {
	tests := []struct {
		difficulty string
		gameTime   int
		wantErr    bool
	}{
		{"", 60, false},
		{"easy", 90, false},
		{"normal", 60, false},
		{"hard", 45, false},
		{"nightmare", 0, true},
	}

	path := filepath.Join(t.TempDir(), "tower.yaml")
	if err := os.WriteFile(path, []byte("timer:\n  game_time: 60\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig, flagDifficulty = "", "" })

	for _, tc := range tests {
		flagDifficulty = tc.difficulty
		cfg, err := loadConfig()
		if (err != nil) != tc.wantErr {
			t.Errorf("difficulty %q: err = %v, expected error: %v", tc.difficulty, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && cfg.Timer.GameTime != tc.gameTime {
			t.Errorf("difficulty %q: game time = %d, expected %d", tc.difficulty, cfg.Timer.GameTime, tc.gameTime)
		}
	}
}

func TestDifficultyIsPersistentFlag(t *testing.T) {
	for _, cmd := range []string{"play", "config", "record"} {
		sub, _, err := rootCmd.Find([]string{cmd})
		if err != nil {
			t.Fatalf("Find(%q) failed: %v", cmd, err)
		}
		if sub.Flag("difficulty") == nil {
			t.Errorf("%s should inherit --difficulty", cmd)
		}
	}
}
