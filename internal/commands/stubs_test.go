package commands

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/remsync/internal/mount"
	"github.com/ruminaider/remsync/internal/preset"
	"github.com/ruminaider/remsync/internal/syncer"
)

// stubRemotes is a canned RemoteSource.
type stubRemotes struct {
	remotes []string
	err     error
}

func (s *stubRemotes) ConfigPath() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "/tmp/rclone.conf", nil
}

func (s *stubRemotes) ListRemotes(string) ([]string, error) {
	return s.remotes, s.err
}

// stubMounter records mount calls against an in-memory mount table.
type stubMounter struct {
	root        string
	mounted     map[string]bool
	failFor     map[string]bool
	vanishAfter map[string]bool // mount reports success but never shows up in the table
	mountCalls  []string
	interactive []bool // whether each Mount call carried a confirm func
}

func newStubMounter() *stubMounter {
	return &stubMounter{
		root:        "/mounts",
		mounted:     make(map[string]bool),
		failFor:     make(map[string]bool),
		vanishAfter: make(map[string]bool),
	}
}

func (s *stubMounter) MountPoint(remote string) string {
	return filepath.Join(s.root, strings.ToLower(remote))
}

func (s *stubMounter) IsMounted(path string) bool {
	return s.mounted[path]
}

func (s *stubMounter) Mount(remote string, confirm mount.ConfirmFunc) (bool, error) {
	s.mountCalls = append(s.mountCalls, remote)
	s.interactive = append(s.interactive, confirm != nil)
	if confirm != nil {
		ok, err := confirm("mount " + remote + "?")
		if err != nil || !ok {
			return false, err
		}
	}
	if s.failFor[remote] {
		return false, errors.New("mount subprocess failed")
	}
	if !s.vanishAfter[remote] {
		s.mounted[s.MountPoint(remote)] = true
	}
	return true, nil
}

// stubRunner records sync jobs and fails the ones listed in failFor.
type stubRunner struct {
	runs    []string // local paths, in run order
	actions []syncer.Action
	failFor map[string]bool // by local path
}

func newStubRunner() *stubRunner {
	return &stubRunner{failFor: make(map[string]bool)}
}

func (s *stubRunner) Run(action syncer.Action, p preset.Preset, mountPoint string) int {
	s.runs = append(s.runs, p.LocalPath)
	s.actions = append(s.actions, action)
	if s.failFor[p.LocalPath] {
		return 1
	}
	return 0
}

// scriptPrompter replays canned answers.
type scriptPrompter struct {
	t        *testing.T
	confirms []bool
	inputs   []string
	selects  []string
}

func (s *scriptPrompter) Confirm(string) (bool, error) {
	if len(s.confirms) == 0 {
		s.t.Fatal("unexpected Confirm prompt")
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func (s *scriptPrompter) Input(_, _ string, validate func(string) error) (string, error) {
	if len(s.inputs) == 0 {
		s.t.Fatal("unexpected Input prompt")
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (s *scriptPrompter) Select(_ string, options []string) (string, error) {
	if len(s.selects) == 0 {
		s.t.Fatal("unexpected Select prompt")
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

// testDeps assembles Deps around the stubs with a store in a temp dir.
func testDeps(t *testing.T, mounts *stubMounter, runner *stubRunner, prompt *scriptPrompter) Deps {
	t.Helper()
	return Deps{
		Remotes: &stubRemotes{remotes: []string{"work", "personal"}},
		Mounts:  mounts,
		Store:   &preset.Store{Path: filepath.Join(t.TempDir(), "presets.yaml")},
		Sync:    runner,
		Prompt:  prompt,
		Out:     &bytes.Buffer{},
		Err:     &bytes.Buffer{},
	}
}
