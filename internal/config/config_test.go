package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_PartialOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dawn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wrap_width: 100\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.WrapWidth)
	require.Equal(t, Default().TabWidth, cfg.TabWidth)
}

func TestLoad_MissingFileReturnsDefaultAndError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "expected an error for a missing file")
	require.Equal(t, Default(), cfg, "expected default config on load failure")
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dawn.yaml")
	cfg := Config{TabWidth: 2, WrapWidth: 72, ThemeName: "midnight", ScaleHeaders: false}
	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
