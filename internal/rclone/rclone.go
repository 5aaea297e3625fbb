// Package rclone wraps the rclone binary. Everything this tool knows about
// remotes, mounting, and data transfer goes through subprocesses built here.
package rclone

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// LaunchFailure is the exit code reported when a command cannot be started at
// all, so callers can tell "rclone failed" from "rclone never ran".
const LaunchFailure = 127

// Client invokes the rclone binary.
type Client struct {
	// Bin is the executable name or path.
	Bin string
	// Exec builds subprocesses. Tests swap it to avoid running rclone.
	Exec func(name string, args ...string) *exec.Cmd
}

// New returns a Client for the rclone binary on PATH.
func New() *Client {
	return &Client{Bin: "rclone", Exec: exec.Command}
}

// Available reports whether the binary can be found.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.Bin)
	return err == nil
}

// ConfigPath asks rclone where its config file lives. The path is the last
// non-empty line of `rclone config file` output and must exist on disk.
func (c *Client) ConfigPath() (string, error) {
	out, err := c.Exec(c.Bin, "config", "file").Output()
	if err != nil {
		return "", fmt.Errorf("rclone config file: %w", err)
	}
	var path string
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			path = trimmed
		}
	}
	if path == "" {
		return "", errors.New("rclone config file: empty output")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("rclone reported config %q, which does not exist", path)
	}
	return path, nil
}

// ListRemotes returns the configured remote names in rclone's order, with
// trailing colons stripped.
func (c *Client) ListRemotes(configPath string) ([]string, error) {
	out, err := c.Exec(c.Bin, "listremotes", "--config", configPath).Output()
	if err != nil {
		return nil, fmt.Errorf("rclone listremotes: %w", err)
	}
	var remotes []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		remotes = append(remotes, strings.TrimSuffix(line, ":"))
	}
	return remotes, nil
}

// Mount mounts remote: at mountPoint as a daemon with cached writes. The
// subprocess inherits the console so rclone's own messages stay visible.
// Exit code zero is the only success signal.
func (c *Client) Mount(remote, mountPoint, configPath string) error {
	cmd := c.Exec(c.Bin, "mount", remote+":", mountPoint,
		"--config", configPath,
		"--vfs-cache-mode", "writes",
		"--daemon")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rclone mount %s: %w", remote, err)
	}
	return nil
}

// Transfer runs an rclone data command (sync, check), streaming its output to
// the console, and blocks until it exits. The child's exit code is returned;
// a command that could not be launched at all reports LaunchFailure.
func (c *Client) Transfer(args ...string) int {
	cmd := c.Exec(c.Bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return LaunchFailure
}
