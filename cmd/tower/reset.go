package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower-time/internal/storage"
)

var resetRecordCmd = &cobra.Command{
	Use:   "reset-record",
	Short: "Delete the stored high score",
	Args:  cobra.NoArgs,
	RunE:  runResetRecord,
}

func runResetRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteSlot(cfg.Storage.RecordKey); err != nil {
		return err
	}
	fmt.Println("Record cleared.")
	return nil
}
