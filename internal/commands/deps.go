// Package commands holds the workflows behind the CLI: preset management,
// the interactive manage-and-run loop, and the two-phase batch sync.
package commands

import (
	"io"

	"github.com/ruminaider/remsync/internal/mount"
	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/syncer"
	"github.com/ruminaider/remsync/internal/ui"
)

// RemoteSource enumerates the remotes configured in the external tool.
type RemoteSource interface {
	ConfigPath() (string, error)
	ListRemotes(configPath string) ([]string, error)
}

// Mounter is the mount-lifecycle surface the workflows need.
type Mounter interface {
	MountPoint(remote string) string
	IsMounted(path string) bool
	Mount(remote string, confirm mount.ConfirmFunc) (bool, error)
}

// Runner executes one sync or check job and returns the child's exit code.
type Runner interface {
	Run(action syncer.Action, p preset.Preset, mountPoint string) int
}

// Deps wires a workflow to its collaborators. Tests substitute stubs for all
// of them; main wires the real rclone client, mount manager, and prompter.
type Deps struct {
	Remotes RemoteSource
	Mounts  Mounter
	Store   *preset.Store
	Sync    Runner
	Prompt  ui.Prompter
	Out     io.Writer
	Err     io.Writer
}
