package commands

import (
	"fmt"
	"os"

	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/syncer"
)

// SyncAllResult summarizes a batch run, preset names grouped by outcome.
type SyncAllResult struct {
	Synced  []string
	Skipped []string
	Failed  []string
}

// SyncAll mounts every remote referenced by any preset, then runs a forward
// sync for each preset in store order. Phase 1 is all-or-nothing: a single
// mount failure aborts the batch before any sync starts. Phase 2 is
// skip-and-continue: one preset failing never stops the rest.
func SyncAll(d Deps) (*SyncAllResult, error) {
	all := d.Store.Load()
	if all.Len() == 0 {
		fmt.Fprintln(d.Out, "No presets found to sync.")
		return &SyncAllResult{}, nil
	}

	fmt.Fprintln(d.Out, "--- Phase 1: mounting required remotes ---")
	for _, remote := range requiredRemotes(all) {
		ok, err := d.Mounts.Mount(remote, nil)
		if err != nil {
			fmt.Fprintf(d.Err, "✗ %v\n", err)
		}
		if !ok {
			return nil, fmt.Errorf("failed to mount required remote %q, aborting sync all", remote)
		}
	}

	fmt.Fprintln(d.Out, "\n--- Phase 2: syncing presets ---")
	result := &SyncAllResult{}
	names := all.Names()
	for i, name := range names {
		pr, _ := all.Get(name)
		fmt.Fprintf(d.Out, "[%d/%d] %s\n", i+1, len(names), name)

		if _, err := os.Stat(pr.LocalPath); err != nil {
			fmt.Fprintf(d.Err, "⚠ Skipping %s: local path does not exist: %s\n", name, pr.LocalPath)
			result.Skipped = append(result.Skipped, name)
			continue
		}
		mountPoint := d.Mounts.MountPoint(pr.RemoteName)
		if !d.Mounts.IsMounted(mountPoint) {
			fmt.Fprintf(d.Err, "⚠ Skipping %s: remote %q is not mounted\n", name, pr.RemoteName)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if code := d.Sync.Run(syncer.Forward, pr, mountPoint); code != 0 {
			fmt.Fprintf(d.Err, "✗ Sync failed for %s (exit code %d)\n", name, code)
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Synced = append(result.Synced, name)
	}
	return result, nil
}

// requiredRemotes returns the distinct remote names across all presets, in
// first-use order, so each remote is mounted exactly once.
func requiredRemotes(all *preset.Presets) []string {
	seen := make(map[string]bool)
	var remotes []string
	for _, name := range all.Names() {
		pr, _ := all.Get(name)
		if !seen[pr.RemoteName] {
			seen[pr.RemoteName] = true
			remotes = append(remotes, pr.RemoteName)
		}
	}
	return remotes
}
