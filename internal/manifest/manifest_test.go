package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"kitinstall/internal/model"
)

func TestDefault(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	require.Len(t, m.Groups, 2)
	require.Equal(t, "core", m.Groups[0].Name)
	require.True(t, m.Groups[0].Critical)
	require.Equal(t, "standards", m.Groups[1].Name)
	require.False(t, m.Groups[1].Critical)
	require.NotEmpty(t, m.Directories)

	total := len(m.Groups[0].Files) + len(m.Groups[1].Files)
	require.Len(t, m.Entries(), total)
}

func TestParse(t *testing.T) {
	data := []byte(`
directories: [out]
groups:
  - name: core
    critical: true
    files:
      - {remote: a.md, local: out/a.md}
      - {remote: b.md, local: out/b.md}
`)

	m, err := Parse(data)
	require.NoError(t, err)

	want := []model.FileEntry{
		{Remote: "a.md", Local: "out/a.md"},
		{Remote: "b.md", Local: "out/b.md"},
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		errPart string
	}{
		{"bad yaml", "groups: [", "failed to parse manifest"},
		{"no groups", "directories: [a]", "no groups"},
		{"absolute local", "groups: [{name: g, files: [{remote: a, local: /etc/a}]}]", "must be relative"},
		{"escaping local", "groups: [{name: g, files: [{remote: a, local: ../a}]}]", "escapes"},
		{"missing remote", "groups: [{name: g, files: [{local: a}]}]", "both remote and local"},
		{"duplicate local", "groups: [{name: g, files: [{remote: a, local: x}, {remote: b, local: x}]}]", "listed twice"},
		{"unnamed group", "groups: [{files: [{remote: a, local: x}]}]", "without a name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.ErrorContains(t, err, tc.errPart)
		})
	}
}
