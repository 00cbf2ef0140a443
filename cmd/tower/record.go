package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-time/internal/games/tower"
	"github.com/vovakirdan/tower-time/internal/storage"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Show the stored high score",
	Long: `Display the highest floor ever reached and when it was set.

Examples:
  tower record
  tower record --db ./tower.db`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	slot, err := store.Describe(cmd.Context(), cfg.Storage.RecordKey)
	if err != nil {
		return err
	}

	fmt.Println("Tower of Time - Record")
	fmt.Println()

	if slot == nil {
		fmt.Println("No record yet.")
		fmt.Println()
		fmt.Println("Play 'tower play' to set the first one!")
		return nil
	}

	floor := tower.ParseRecord(slot.Value)
	fmt.Printf("  %-8s  %d\n", "Floor", floor+1)
	fmt.Printf("  %-8s  %d\n", "Stored", floor)
	if !slot.UpdatedAt.IsZero() {
		fmt.Printf("  %-8s  %s\n", "Set", slot.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
