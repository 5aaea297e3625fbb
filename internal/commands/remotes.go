package commands

import "fmt"

// ListRemotes resolves the rclone config and enumerates remotes. Failures are
// reported as an empty list plus a diagnostic — callers fall back to the
// previous menu rather than aborting.
func ListRemotes(d Deps) []string {
	configPath, err := d.Remotes.ConfigPath()
	if err != nil {
		fmt.Fprintf(d.Err, "✗ %v\n", err)
		return nil
	}
	remotes, err := d.Remotes.ListRemotes(configPath)
	if err != nil {
		fmt.Fprintf(d.Err, "✗ %v\n", err)
		return nil
	}
	return remotes
}
