// Package mount manages per-remote mount points under the user's home
// directory and tracks which of them this process created.
package mount

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/ruminaider/remsync/internal/rclone"
)

// ConfirmFunc answers a yes/no question before a mount proceeds. A nil
// ConfirmFunc means batch mode: mount without asking.
type ConfirmFunc func(question string) (bool, error)

// Manager mounts and unmounts remotes and remembers the mount points created
// by this session. Cleanup only ever touches session-owned entries; a mount
// that was already live before the session started is never torn down.
type Manager struct {
	rc   *rclone.Client
	root string
	out  io.Writer
	errw io.Writer

	// partitions lists the live mount table. Swapped in tests.
	partitions func(all bool) ([]disk.PartitionStat, error)
	// unmount detaches one fuse mount. Swapped in tests.
	unmount func(mountPoint string) error

	owned map[string]bool
}

// NewManager returns a Manager rooted at root (normally paths.MountsRoot()).
func NewManager(rc *rclone.Client, root string, out, errw io.Writer) *Manager {
	return &Manager{
		rc:         rc,
		root:       root,
		out:        out,
		errw:       errw,
		partitions: disk.Partitions,
		unmount:    fusermountDetach,
		owned:      make(map[string]bool),
	}
}

func fusermountDetach(mountPoint string) error {
	return exec.Command("fusermount", "-u", mountPoint).Run()
}

// MountPoint derives the mount directory for a remote: the name lowercased
// with "_", "-" and ":" stripped, joined under the mounts root. Distinct
// remote names can collide after sanitization ("My-Remote" and "myremote"
// share a directory); the collision is a known gap and not guarded against.
func (m *Manager) MountPoint(remote string) string {
	s := strings.ToLower(remote)
	for _, cut := range []string{"_", "-", ":"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return filepath.Join(m.root, s)
}

// IsMounted reports whether path appears in the live mount table. Plain
// stat-based checks are unreliable for fuse filesystems, so the table itself
// is scanned. Any scan error reads as "not mounted".
func (m *Manager) IsMounted(path string) bool {
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		real = path
	}
	parts, err := m.partitions(true)
	if err != nil {
		return false
	}
	for _, p := range parts {
		if p.Mountpoint == real {
			return true
		}
	}
	return false
}

// Mount ensures remote is mounted at its mount point and reports success.
// Idempotent: an already-mounted remote returns true immediately, with no
// subprocess run and no ownership recorded. When confirm is non-nil it gates
// the mount; a declined confirmation returns false without side effects.
func (m *Manager) Mount(remote string, confirm ConfirmFunc) (bool, error) {
	mountPoint := m.MountPoint(remote)
	if m.IsMounted(mountPoint) {
		if confirm != nil {
			fmt.Fprintf(m.out, "'%s' is already mounted at %s\n", remote, mountPoint)
		}
		return true, nil
	}

	if confirm != nil {
		ok, err := confirm(fmt.Sprintf("Mount '%s' at %s?", remote, mountPoint))
		if err != nil || !ok {
			return false, err
		}
	}

	configPath, err := m.rc.ConfigPath()
	if err != nil {
		return false, fmt.Errorf("cannot mount %s: %w", remote, err)
	}

	fmt.Fprintf(m.out, "Creating mount point %s\n", mountPoint)
	if err := os.MkdirAll(mountPoint, 0755); err != nil {
		return false, fmt.Errorf("creating mount point: %w", err)
	}

	if err := m.rc.Mount(remote, mountPoint, configPath); err != nil {
		// Roll back the directory we just created. Best effort only: a
		// non-empty or permission-denied directory stays behind.
		os.Remove(mountPoint)
		return false, err
	}

	m.owned[mountPoint] = true
	fmt.Fprintf(m.out, "✓ %s mounted at %s\n", remote, mountPoint)
	return true, nil
}

// Unmount detaches a remote's mount and removes its directory. It refuses to
// act on a mount this session did not create unless force is set: a mount
// owned by another process is someone else's to tear down.
func (m *Manager) Unmount(remote string, force bool) error {
	mountPoint := m.MountPoint(remote)
	if !m.IsMounted(mountPoint) {
		return fmt.Errorf("%s is not mounted", mountPoint)
	}
	if !m.owned[mountPoint] && !force {
		return fmt.Errorf("%s was not mounted by this session (use --force to unmount anyway)", mountPoint)
	}
	if err := m.unmount(mountPoint); err != nil {
		return fmt.Errorf("unmounting %s: %w", mountPoint, err)
	}
	os.Remove(mountPoint)
	delete(m.owned, mountPoint)
	return nil
}

// Disown drops session ownership of a remote's mount point without touching
// the mount, leaving it alive past process exit. Used by the explicit mount
// command, whose whole point is a mount that outlives the process.
func (m *Manager) Disown(remote string) {
	delete(m.owned, m.MountPoint(remote))
}

// CleanupAll tears down every session-owned mount: unmount, then remove the
// directory, errors ignored at each step. It never fails and never touches a
// mount point outside the session-owned set.
func (m *Manager) CleanupAll() {
	if len(m.owned) == 0 {
		return
	}
	fmt.Fprintln(m.out, "\nCleaning up mounted filesystems...")
	for mountPoint := range m.owned {
		fmt.Fprintf(m.out, "Unmounting %s\n", mountPoint)
		_ = m.unmount(mountPoint)
		_ = os.Remove(mountPoint)
	}
	m.owned = make(map[string]bool)
	fmt.Fprintln(m.out, "Cleanup complete.")
}

// Owned returns a sorted snapshot of the session-owned mount points.
func (m *Manager) Owned() []string {
	points := make([]string, 0, len(m.owned))
	for mountPoint := range m.owned {
		points = append(points, mountPoint)
	}
	sort.Strings(points)
	return points
}
