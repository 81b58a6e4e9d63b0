package gnatconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOMLOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gnat.toml")
	require.NoError(t, os.WriteFile(path, []byte("tau = 2.5\nstrict = false\n"), 0o644))

	cfg, err := LoadTOML(Default(), path)
	require.NoError(t, err)

	assert.Equal(t, float32(2.5), cfg.Tau)
	assert.False(t, cfg.Strict)
	assert.Equal(t, float32(1.0), cfg.Threshold) // untouched default
}

func TestLoadTOMLMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadTOML(Default(), filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "GNATS", GNATS.String())
	assert.Equal(t, "CDH", CDH.String())
}
