package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, Default.BaseURL, cfg.BaseURL)
	require.Equal(t, ".", cfg.TargetDir)
	require.Equal(t, "http", cfg.Client)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, filepath.Join(home, ".kitinstall", "history.db"), cfg.HistoryDB)
	require.False(t, cfg.AssumeYes)
	require.Empty(t, cfg.Exclude)
	require.DirExists(t, filepath.Join(home, ".kitinstall"))
}

func TestLoad_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".kitinstall")
	require.NoError(t, os.MkdirAll(dir, 0755))
	yaml := "base_url: https://example.com/kit\nclient: curl\ntimeout: 5s\nexclude: [code-style]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("KITINSTALL_CLIENT", "wget")
	t.Setenv("KITINSTALL_ASSUME_YES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "https://example.com/kit", cfg.BaseURL)
	require.Equal(t, "wget", cfg.Client, "env overrides the config file")
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.True(t, cfg.AssumeYes)
	require.Equal(t, []string{"code-style"}, cfg.Exclude)
}

func TestLoad_InvalidFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".kitinstall")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("base_url: [\n"), 0644))

	_, err := Load()
	require.ErrorContains(t, err, "failed to read config file")
}
