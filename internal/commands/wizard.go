package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/ui"
)

// CreatePreset walks the user through a new preset for remoteName. It returns
// ("", nil, nil) when the user cancels at any step; nothing is persisted
// until every field validates and the final confirmation is given.
func CreatePreset(d Deps, remoteName string) (string, *preset.Preset, error) {
	all := d.Store.Load()

	rawName, err := d.Prompt.Input("Preset name", "A short, memorable name", func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return errors.New("name cannot be empty")
		}
		if _, exists := all.Get(s); exists {
			return fmt.Errorf("preset %q already exists", s)
		}
		return nil
	})
	if err != nil {
		return cancelled(d, err)
	}
	name := strings.TrimSpace(rawName)

	rawLocal, err := d.Prompt.Input("Local path",
		"Full local directory to sync (e.g. ~/Documents)", func(s string) error {
			expanded := ExpandHome(strings.TrimSpace(s))
			info, err := os.Stat(expanded)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", expanded)
			}
			return nil
		})
	if err != nil {
		return cancelled(d, err)
	}
	localPath := ExpandHome(strings.TrimSpace(rawLocal))

	remotePath, err := d.Prompt.Input("Remote sub-folder",
		fmt.Sprintf("Path on '%s' (e.g. Backups/Work)", remoteName), nil)
	if err != nil {
		return cancelled(d, err)
	}
	remotePath = strings.TrimSpace(remotePath)

	rawIgnores, err := d.Prompt.Input("Ignores (optional)",
		"Comma-separated patterns; end folders with '/' (e.g. node_modules/, *.log)", nil)
	if err != nil {
		return cancelled(d, err)
	}
	ignores := SplitIgnores(rawIgnores)

	fmt.Fprintf(d.Out, "\nName:   %s\nLocal:  %s\nRemote: %s:%s\n", name, localPath, remoteName, remotePath)
	if len(ignores) > 0 {
		fmt.Fprintf(d.Out, "Ignores: %s\n", strings.Join(ignores, ", "))
	}
	ok, err := d.Prompt.Confirm("Save this preset?")
	if err != nil {
		return cancelled(d, err)
	}
	if !ok {
		fmt.Fprintln(d.Out, "Preset creation cancelled.")
		return "", nil, nil
	}

	pr := preset.Preset{
		LocalPath:  localPath,
		RemoteName: remoteName,
		RemotePath: remotePath,
		Ignores:    ignores,
	}
	all.Set(name, pr)
	if err := d.Store.Save(all); err != nil {
		return "", nil, err
	}
	fmt.Fprintf(d.Out, "✓ Preset '%s' saved\n", name)
	return name, &pr, nil
}

// DeletePreset removes a preset after explicit confirmation. Mount state is
// untouched: deleting a preset never unmounts its remote.
func DeletePreset(d Deps, name string) error {
	all := d.Store.Load()
	if _, ok := all.Get(name); !ok {
		return fmt.Errorf("no preset named %q", name)
	}

	ok, err := d.Prompt.Confirm(fmt.Sprintf("Permanently delete preset '%s'?", name))
	if err != nil && !errors.Is(err, ui.ErrCancelled) {
		return err
	}
	if !ok {
		fmt.Fprintln(d.Out, "Deletion cancelled.")
		return nil
	}

	all.Delete(name)
	if err := d.Store.Save(all); err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "✓ Preset '%s' deleted\n", name)
	return nil
}

// cancelled maps a prompt cancellation to the wizard's "nothing happened"
// result; any other prompt error is passed through.
func cancelled(d Deps, err error) (string, *preset.Preset, error) {
	if errors.Is(err, ui.ErrCancelled) {
		fmt.Fprintln(d.Out, "Preset creation cancelled.")
		return "", nil, nil
	}
	return "", nil, err
}

// ExpandHome resolves a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// SplitIgnores parses a comma-separated ignore list: entries are trimmed,
// empties dropped, order preserved.
func SplitIgnores(raw string) []string {
	var ignores []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ignores = append(ignores, p)
		}
	}
	return ignores
}
