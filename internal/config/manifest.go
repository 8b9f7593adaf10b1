package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind documents one diagnostic kind in the manifest.
type Kind struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Manifest is the checked-in list of documented diagnostic kinds. Merge runs
// use it to flag rows carrying kind names nobody documented.
type Manifest struct {
	Kinds []Kind `yaml:"kinds"`
}

// LoadManifest reads and validates a YAML kind manifest. An empty path
// yields a nil manifest, meaning no kind checking.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kind manifest %q: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse kind manifest %q: %w", path, err)
	}

	seen := map[string]struct{}{}
	for i, k := range m.Kinds {
		name := strings.TrimSpace(k.Name)
		if name == "" {
			return nil, fmt.Errorf("kind manifest %q: entry %d has no name", path, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("kind manifest %q: duplicate kind %q", path, name)
		}
		seen[name] = struct{}{}
	}

	return &m, nil
}

// KnownKinds returns the manifest's names as a set, nil for a nil manifest.
func (m *Manifest) KnownKinds() map[string]struct{} {
	if m == nil {
		return nil
	}
	known := make(map[string]struct{}, len(m.Kinds))
	for _, k := range m.Kinds {
		known[strings.TrimSpace(k.Name)] = struct{}{}
	}
	return known
}
