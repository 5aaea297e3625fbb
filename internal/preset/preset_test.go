package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/remsync/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *preset.Store {
	t.Helper()
	return &preset.Store{Path: filepath.Join(t.TempDir(), "presets.yaml")}
}

func TestLoad_MissingFile(t *testing.T) {
	s := tempStore(t)
	p := s.Load()
	assert.Equal(t, 0, p.Len())
}

func TestLoad_MalformedFile(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("{{{not yaml"), 0644))

	p := s.Load()
	assert.Equal(t, 0, p.Len())
}

func TestLoad_NonMappingDocument(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("- just\n- a\n- list\n"), 0644))

	p := s.Load()
	assert.Equal(t, 0, p.Len())
}

func TestSaveLoad_PreservesInsertionOrder(t *testing.T) {
	s := tempStore(t)

	p := preset.NewPresets()
	p.Set("zeta", preset.Preset{LocalPath: "/home/u/z", RemoteName: "work", RemotePath: "Z"})
	p.Set("alpha", preset.Preset{LocalPath: "/home/u/a", RemoteName: "work", RemotePath: "A"})
	p.Set("mid", preset.Preset{LocalPath: "/home/u/m", RemoteName: "personal", RemotePath: "M",
		Ignores: []string{".git/", "*.log"}})
	require.NoError(t, s.Save(p))

	loaded := s.Load()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, loaded.Names())

	mid, ok := loaded.Get("mid")
	require.True(t, ok)
	assert.Equal(t, "/home/u/m", mid.LocalPath)
	assert.Equal(t, "personal", mid.RemoteName)
	assert.Equal(t, []string{".git/", "*.log"}, mid.Ignores)
}

func TestSet_ExistingNameKeepsPosition(t *testing.T) {
	p := preset.NewPresets()
	p.Set("a", preset.Preset{RemotePath: "old"})
	p.Set("b", preset.Preset{})
	p.Set("a", preset.Preset{RemotePath: "new"})

	assert.Equal(t, []string{"a", "b"}, p.Names())
	a, _ := p.Get("a")
	assert.Equal(t, "new", a.RemotePath)
}

func TestDelete_RewritesOnlyStoreContent(t *testing.T) {
	s := tempStore(t)

	p := preset.NewPresets()
	p.Set("docs", preset.Preset{LocalPath: "/d", RemoteName: "work"})
	p.Set("pics", preset.Preset{LocalPath: "/p", RemoteName: "work"})
	require.NoError(t, s.Save(p))

	p.Delete("docs")
	require.NoError(t, s.Save(p))

	loaded := s.Load()
	assert.Equal(t, []string{"pics"}, loaded.Names())
	_, ok := loaded.Get("docs")
	assert.False(t, ok)
}

func TestDelete_UnknownNameIsNoop(t *testing.T) {
	p := preset.NewPresets()
	p.Set("only", preset.Preset{})
	p.Delete("missing")
	assert.Equal(t, []string{"only"}, p.Names())
}

func TestForRemote_FiltersInOrder(t *testing.T) {
	p := preset.NewPresets()
	p.Set("one", preset.Preset{RemoteName: "work"})
	p.Set("two", preset.Preset{RemoteName: "personal"})
	p.Set("three", preset.Preset{RemoteName: "work"})

	assert.Equal(t, []string{"one", "three"}, p.ForRemote("work"))
	assert.Empty(t, p.ForRemote("nowhere"))
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := &preset.Store{Path: filepath.Join(dir, "nested", "presets.yaml")}

	p := preset.NewPresets()
	p.Set("docs", preset.Preset{LocalPath: "/d", RemoteName: "work"})
	require.NoError(t, s.Save(p))

	loaded := s.Load()
	assert.Equal(t, 1, loaded.Len())
}
