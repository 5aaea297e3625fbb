package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/remsync/internal/commands"
)

var syncAllCmd = &cobra.Command{
	Use:   "sync-all",
	Short: "Mount every remote used by a preset, then sync all presets local -> remote",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.SyncAll(deps())
		if err != nil {
			return err
		}
		fmt.Printf("\n✓ Sync all complete: %d synced, %d skipped, %d failed\n",
			len(result.Synced), len(result.Skipped), len(result.Failed))
		for _, name := range result.Skipped {
			fmt.Printf("  ⚠ skipped %s\n", name)
		}
		for _, name := range result.Failed {
			fmt.Printf("  ✗ failed %s\n", name)
		}
		return nil
	},
}
