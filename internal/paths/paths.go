package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.remsync.
func ConfigDir() string {
	return filepath.Join(home(), ".remsync")
}

// PresetFile returns ~/.remsync/presets.yaml.
func PresetFile() string {
	return filepath.Join(ConfigDir(), "presets.yaml")
}

// MountsRoot returns ~/remsync-mounts, the parent directory under which
// every remote gets its own mount point.
func MountsRoot() string {
	return filepath.Join(home(), "remsync-mounts")
}
