package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mountCmd = &cobra.Command{
	Use:   "mount <remote>",
	Short: "Mount a remote under the mounts root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote := args[0]
		ok, err := mounts.Mount(remote, nil)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("mount failed for %q", remote)
		}
		// A mount requested by name should outlive the process, so it is
		// released from session ownership before exit cleanup runs.
		mounts.Disown(remote)
		fmt.Printf("✓ %s mounted at %s\n", remote, mounts.MountPoint(remote))
		return nil
	},
}

var unmountForce bool

var unmountCmd = &cobra.Command{
	Use:   "unmount <remote>",
	Short: "Unmount a remote and remove its mount directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mounts.Unmount(args[0], unmountForce); err != nil {
			return err
		}
		fmt.Printf("✓ %s unmounted\n", args[0])
		return nil
	},
}

func init() {
	unmountCmd.Flags().BoolVar(&unmountForce, "force", false,
		"Unmount even if this session did not create the mount")
}
