package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ruminaider/remsync/internal/commands"
	"github.com/ruminaider/remsync/internal/mount"
	"github.com/ruminaider/remsync/internal/paths"
	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/rclone"
	"github.com/ruminaider/remsync/internal/syncer"
	"github.com/ruminaider/remsync/internal/ui"
)

var version = "0.3.1"

// exitMissingDependency is returned when rclone is not installed at all.
// Ordinary command failures exit 1.
const exitMissingDependency = 2

var (
	rcloneClient *rclone.Client
	mounts       *mount.Manager
	cleanupOnce  sync.Once
)

// deps assembles the workflow dependencies around the process-wide mount
// manager, which owns the session mount set.
func deps() commands.Deps {
	return commands.Deps{
		Remotes: rcloneClient,
		Mounts:  mounts,
		Store:   &preset.Store{Path: paths.PresetFile()},
		Sync:    &syncer.Executor{Rclone: rcloneClient, Err: os.Stderr},
		Prompt:  ui.HuhPrompter{},
		Out:     os.Stdout,
		Err:     os.Stderr,
	}
}

// cleanup tears down session-owned mounts. It runs at most once, whichever
// exit path fires first.
func cleanup() {
	cleanupOnce.Do(mounts.CleanupAll)
}

var rootCmd = &cobra.Command{
	Use:   "remsync",
	Short: "Mount rclone remotes and sync local folders against them",
	Long: "remsync mounts rclone remotes under your home directory and runs\n" +
		"preset-driven sync, reverse-sync, and check jobs through rclone.",
	RunE: runMainMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("remsync %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(syncAllCmd)
	rootCmd.AddCommand(remotesCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(unmountCmd)
}

func main() {
	rcloneClient = rclone.New()
	if !rcloneClient.Available() {
		fmt.Fprintln(os.Stderr, "✗ Required tool 'rclone' is not installed.")
		os.Exit(exitMissingDependency)
	}
	mounts = mount.NewManager(rcloneClient, paths.MountsRoot(), os.Stdout, os.Stderr)

	// An interrupt mid-sync must still tear down session mounts. The sync
	// subprocess shares our process group and receives the signal itself.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cleanup()
		os.Exit(0)
	}()

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}
