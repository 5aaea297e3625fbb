// Package syncer builds and runs rclone sync and check jobs for presets.
package syncer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/rclone"
)

// Action selects the transfer direction.
type Action string

const (
	// Forward syncs the local directory to the remote.
	Forward Action = "forward"
	// Reverse syncs the remote back to the local directory.
	Reverse Action = "reverse"
	// Check compares hashes without transferring anything. The comparison is
	// symmetric, but arguments keep the (local, remote) order so repeated
	// runs produce identical command lines.
	Check Action = "check"
)

// Filters translates ignore patterns into rclone filter arguments, one
// exclusion per pattern, in the order given. No sorting and no deduplication:
// rclone filters are order-sensitive.
func Filters(ignores []string) []string {
	var args []string
	for _, pattern := range ignores {
		args = append(args, "--filter", "- "+pattern)
	}
	return args
}

// Executor runs sync and check jobs against a mounted remote.
type Executor struct {
	Rclone *rclone.Client
	Err    io.Writer
}

// Run executes action for a preset against its mount point and returns the
// child's exit code. A missing local path fails fast: no subprocess runs and
// a non-zero code is returned.
func (e *Executor) Run(action Action, p preset.Preset, mountPoint string) int {
	remotePath := filepath.Join(mountPoint, p.RemotePath)

	if _, err := os.Stat(p.LocalPath); err != nil {
		fmt.Fprintf(e.Err, "✗ Local path does not exist: %s\n", p.LocalPath)
		return 1
	}

	args := []string{"-P"}
	args = append(args, Filters(p.Ignores)...)
	switch action {
	case Forward:
		args = append(args, "sync", p.LocalPath, remotePath)
	case Reverse:
		args = append(args, "sync", remotePath, p.LocalPath)
	case Check:
		args = append(args, "check", p.LocalPath, remotePath)
	default:
		fmt.Fprintf(e.Err, "✗ Unknown action %q\n", action)
		return 1
	}

	return e.Rclone.Transfer(args...)
}
