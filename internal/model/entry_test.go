package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileEntryURL(t *testing.T) {
	testCases := []struct {
		name string
		base string
		path string
		want string
	}{
		{"plain", "https://example.com/kit", "a/b.md", "https://example.com/kit/a/b.md"},
		{"trailing slash", "https://example.com/kit/", "a/b.md", "https://example.com/kit/a/b.md"},
		{"leading slash", "https://example.com/kit", "/a/b.md", "https://example.com/kit/a/b.md"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := FileEntry{Remote: tc.path}
			require.Equal(t, tc.want, e.URL(tc.base))
		})
	}
}
