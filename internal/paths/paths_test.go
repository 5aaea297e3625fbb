package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/ruminaider/remsync/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestPresetFileUnderConfigDir(t *testing.T) {
	assert.Equal(t, paths.ConfigDir(), filepath.Dir(paths.PresetFile()))
	assert.Equal(t, "presets.yaml", filepath.Base(paths.PresetFile()))
}

func TestMountsRootSeparateFromConfigDir(t *testing.T) {
	// Mount points live in their own tree so mount cleanup can never touch
	// the config directory.
	assert.Equal(t, "remsync-mounts", filepath.Base(paths.MountsRoot()))
	assert.NotEqual(t, paths.ConfigDir(), paths.MountsRoot())
}
