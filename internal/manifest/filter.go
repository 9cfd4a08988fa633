package manifest

import (
	"path"
	"strings"
)

// Exclude returns a copy of m without the entries whose local path has a
// segment matching one of patterns. Groups left empty are dropped.
func (m *Manifest) Exclude(patterns []string) *Manifest {
	if len(patterns) == 0 {
		return m
	}

	out := &Manifest{Directories: m.Directories}
	for _, g := range m.Groups {
		kept := g
		kept.Files = nil

		for _, f := range g.Files {
			if shouldIgnore(f.Local, patterns) {
				continue
			}
			kept.Files = append(kept.Files, f)
		}

		if len(kept.Files) > 0 {
			out.Groups = append(out.Groups, kept)
		}
	}

	return out
}

func shouldIgnore(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := path.Match(pattern, p); err == nil && matched {
			return true
		}
	}

	for _, part := range strings.Split(p, "/") {
		for _, pattern := range patterns {
			matched, err := path.Match(pattern, part)
			if err == nil && matched {
				return true
			}
		}
	}

	return false
}
