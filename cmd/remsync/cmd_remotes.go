package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/remsync/internal/commands"
)

var remotesCmd = &cobra.Command{
	Use:   "remotes",
	Short: "List configured rclone remotes and their mount state",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps()
		remotes := commands.ListRemotes(d)
		if len(remotes) == 0 {
			return fmt.Errorf("no remotes found — configure rclone first")
		}
		for _, remote := range remotes {
			mountPoint := d.Mounts.MountPoint(remote)
			if d.Mounts.IsMounted(mountPoint) {
				fmt.Printf("✓ %s (mounted at %s)\n", remote, mountPoint)
			} else {
				fmt.Printf("  %s\n", remote)
			}
		}
		return nil
	},
}
