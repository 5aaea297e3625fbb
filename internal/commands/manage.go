package commands

import (
	"fmt"

	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/syncer"
)

const (
	optCreatePreset = "[+] Create a new preset for this remote"
	optBackToMenu   = "[<] Back to main menu"

	optForward    = "Sync (local -> remote)"
	optReverse    = "Reverse sync (remote -> local)"
	optCheck      = "Check (compare hashes)"
	optBackToList = "[<] Back to preset list"
)

// ManagePresets is the interactive workflow: pick a remote, mount it with
// confirmation, then create or run presets against it until the user backs
// out. Every failure path returns to the caller's menu instead of aborting.
func ManagePresets(d Deps) error {
	remotes := ListRemotes(d)
	if len(remotes) == 0 {
		fmt.Fprintln(d.Err, "✗ No remotes found. Configure rclone first.")
		return nil
	}

	remote, err := d.Prompt.Select("Select a remote", remotes)
	if err != nil {
		return nil
	}

	ok, err := d.Mounts.Mount(remote, d.Prompt.Confirm)
	if err != nil {
		fmt.Fprintf(d.Err, "✗ %v\n", err)
	}
	if !ok {
		fmt.Fprintln(d.Err, "✗ Could not mount remote. Returning to main menu.")
		return nil
	}

	for {
		all := d.Store.Load()
		options := append(all.ForRemote(remote), optCreatePreset, optBackToMenu)

		choice, err := d.Prompt.Select(fmt.Sprintf("Presets for %s", remote), options)
		if err != nil || choice == optBackToMenu {
			return nil
		}

		var name string
		var pr preset.Preset
		if choice == optCreatePreset {
			created, createdPreset, err := CreatePreset(d, remote)
			if err != nil {
				return err
			}
			if created == "" {
				continue
			}
			name, pr = created, *createdPreset
		} else {
			name = choice
			pr, _ = all.Get(name)
		}

		if err := runAction(d, name, pr); err != nil {
			return err
		}
	}
}

// runAction asks for one action and executes it against the preset's mount.
func runAction(d Deps, name string, pr preset.Preset) error {
	choice, err := d.Prompt.Select(fmt.Sprintf("Action for '%s'", name),
		[]string{optForward, optReverse, optCheck, optBackToList})
	if err != nil || choice == optBackToList {
		return nil
	}

	var action syncer.Action
	switch choice {
	case optForward:
		action = syncer.Forward
	case optReverse:
		action = syncer.Reverse
	case optCheck:
		action = syncer.Check
	}

	mountPoint := d.Mounts.MountPoint(pr.RemoteName)
	if code := d.Sync.Run(action, pr, mountPoint); code != 0 {
		fmt.Fprintf(d.Err, "✗ rclone exited with code %d\n", code)
	}
	return nil
}
