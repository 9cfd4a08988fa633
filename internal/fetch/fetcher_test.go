package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.md":
			if r.Header.Get("User-Agent") != "kitinstall" {
				http.Error(w, "bad agent", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte("# hello\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := New(ClientHTTP, 5*time.Second)
	require.NoError(t, err)
	require.Equal(t, ClientHTTP, f.Name())

	data, err := f.Fetch(context.Background(), srv.URL+"/ok.md")
	require.NoError(t, err)
	require.Equal(t, "# hello\n", string(data))

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.md")
	require.ErrorContains(t, err, "404")
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(nil).Fetch(context.Background(), url+"/x")
	require.ErrorContains(t, err, "failed to fetch")
}

func TestNew_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	for _, kind := range []string{ClientCurl, ClientWget} {
		_, err := New(kind, time.Second)
		require.ErrorIs(t, err, ErrNoClient, kind)
	}
}

func TestNew_UnknownClient(t *testing.T) {
	_, err := New("ftp", time.Second)
	require.ErrorContains(t, err, "unknown client")
	require.NotErrorIs(t, err, ErrNoClient)
}

func TestCommandFetcher(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as a fake curl")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\necho \"$@\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curl"), []byte(script), 0755))
	failing := "#!/bin/sh\necho 'wget: 404' >&2\nexit 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wget"), []byte(failing), 0755))
	t.Setenv("PATH", dir)

	f, err := New(ClientCurl, 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, ClientCurl, f.Name())

	data, err := f.Fetch(context.Background(), "https://example.com/a.md")
	require.NoError(t, err)
	require.Equal(t, "-fsSL --max-time 10 https://example.com/a.md\n", string(data))

	w, err := New(ClientWget, 10*time.Second)
	require.NoError(t, err)

	_, err = w.Fetch(context.Background(), "https://example.com/a.md")
	require.ErrorContains(t, err, "wget: 404")
}

func TestSeconds(t *testing.T) {
	testCases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{300 * time.Millisecond, "1"},
		{time.Second, "1"},
		{1500 * time.Millisecond, "2"},
		{30 * time.Second, "30"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, seconds(tc.in), tc.in.String())
	}
}

func TestCommandFetcher_SubSecondTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as a fake curl")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curl"), []byte("#!/bin/sh\necho \"$@\"\n"), 0755))
	t.Setenv("PATH", dir)

	f, err := New(ClientCurl, 300*time.Millisecond)
	require.NoError(t, err)

	data, err := f.Fetch(context.Background(), "https://example.com/a.md")
	require.NoError(t, err)
	require.Equal(t, "-fsSL --max-time 1 https://example.com/a.md\n", string(data))
}
