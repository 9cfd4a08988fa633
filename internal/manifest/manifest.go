package manifest

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"kitinstall/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var embedded []byte

type Manifest struct {
	Directories []string      `yaml:"directories"`
	Groups      []model.Group `yaml:"groups"`
}

// Default returns the manifest compiled into the binary.
func Default() (*Manifest, error) {
	return Parse(embedded)
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Entries returns every file in install order.
func (m *Manifest) Entries() []model.FileEntry {
	var entries []model.FileEntry
	for _, g := range m.Groups {
		entries = append(entries, g.Files...)
	}

	return entries
}

func (m *Manifest) validate() error {
	if len(m.Groups) == 0 {
		return fmt.Errorf("manifest has no groups")
	}

	for _, dir := range m.Directories {
		if err := checkRelative(dir); err != nil {
			return fmt.Errorf("invalid directory %q: %w", dir, err)
		}
	}

	seen := make(map[string]string)
	for _, g := range m.Groups {
		if g.Name == "" {
			return fmt.Errorf("manifest group without a name")
		}

		for _, f := range g.Files {
			if f.Remote == "" || f.Local == "" {
				return fmt.Errorf("group %s: entry needs both remote and local paths", g.Name)
			}
			if err := checkRelative(f.Local); err != nil {
				return fmt.Errorf("group %s: invalid local path %q: %w", g.Name, f.Local, err)
			}
			if prev, ok := seen[f.Local]; ok {
				return fmt.Errorf("local path %q listed twice (groups %s and %s)", f.Local, prev, g.Name)
			}
			seen[f.Local] = g.Name
		}
	}

	return nil
}

func checkRelative(p string) error {
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("must be relative")
	}

	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("escapes the target directory")
	}

	return nil
}
