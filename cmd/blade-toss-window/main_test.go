package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigErrors(t *testing.T) {
	dir := t.TempDir()

	err := run(filepath.Join(dir, "missing.toml"), false)
	assert.Error(t, err, "missing config file")

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[audio]\nvolume = 3.0\n"), 0o644))
	err = run(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio.volume")
}
