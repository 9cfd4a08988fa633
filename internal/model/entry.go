package model

import "strings"

// FileEntry is one file to install: where it lives under the base URL and
// where it lands under the target directory.
type FileEntry struct {
	Remote string `yaml:"remote"`
	Local  string `yaml:"local"`
}

type Group struct {
	Name     string      `yaml:"name"`
	Critical bool        `yaml:"critical"`
	Files    []FileEntry `yaml:"files"`
}

func (e FileEntry) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(e.Remote, "/")
}
