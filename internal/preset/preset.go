// Package preset stores named sync presets in ~/.remsync/presets.yaml.
package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Preset maps a local directory to a sub-path on a configured remote.
type Preset struct {
	LocalPath  string   `yaml:"local_path"`
	RemoteName string   `yaml:"remote_name"`
	RemotePath string   `yaml:"remote_path"`
	Ignores    []string `yaml:"ignores,omitempty"`
}

// Presets is a name→Preset collection that keeps the file's mapping order.
// Batch runs iterate presets in this order, so it must survive a save/load
// round trip.
type Presets struct {
	order  []string
	byName map[string]Preset
}

// NewPresets returns an empty collection.
func NewPresets() *Presets {
	return &Presets{byName: make(map[string]Preset)}
}

// Len returns the number of stored presets.
func (p *Presets) Len() int {
	return len(p.order)
}

// Names returns the preset names in insertion order.
func (p *Presets) Names() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// Get looks up a preset by name.
func (p *Presets) Get(name string) (Preset, bool) {
	pr, ok := p.byName[name]
	return pr, ok
}

// Set adds or replaces a preset. A new name is appended; an existing name
// keeps its position.
func (p *Presets) Set(name string, pr Preset) {
	if _, exists := p.byName[name]; !exists {
		p.order = append(p.order, name)
	}
	p.byName[name] = pr
}

// Delete removes a preset by name.
func (p *Presets) Delete(name string) {
	if _, exists := p.byName[name]; !exists {
		return
	}
	delete(p.byName, name)
	for i, n := range p.order {
		if n == name {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// ForRemote returns the names of presets targeting the given remote,
// in insertion order.
func (p *Presets) ForRemote(remote string) []string {
	var names []string
	for _, name := range p.order {
		if p.byName[name].RemoteName == remote {
			names = append(names, name)
		}
	}
	return names
}

// UnmarshalYAML decodes the top-level mapping, keeping its key order.
func (p *Presets) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("presets: expected a mapping, got %v", node.Kind)
	}
	p.order = nil
	p.byName = make(map[string]Preset, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("presets: decoding name: %w", err)
		}
		var pr Preset
		if err := node.Content[i+1].Decode(&pr); err != nil {
			return fmt.Errorf("presets: decoding %q: %w", name, err)
		}
		p.Set(name, pr)
	}
	return nil
}

// MarshalYAML emits the mapping in insertion order.
func (p *Presets) MarshalYAML() (any, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range p.order {
		var key, val yaml.Node
		if err := key.Encode(name); err != nil {
			return nil, err
		}
		if err := val.Encode(p.byName[name]); err != nil {
			return nil, err
		}
		doc.Content = append(doc.Content, &key, &val)
	}
	return doc, nil
}

// Store reads and writes the preset file.
type Store struct {
	Path string
}

// Load returns the stored presets. A missing, unreadable, or malformed file
// yields an empty collection — callers never see a load error.
func (s *Store) Load() *Presets {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return NewPresets()
	}
	p := NewPresets()
	if err := yaml.Unmarshal(data, p); err != nil {
		return NewPresets()
	}
	return p
}

// Save rewrites the whole preset file. There is no locking: concurrent
// instances race and the last writer wins.
func (s *Store) Save(p *Presets) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing presets: %w", err)
	}
	return nil
}
