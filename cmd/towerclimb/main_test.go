package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagLogLevel, flagProfile = "", "info", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "max_jump_count: 2")
	assert.Contains(t, out, "on_draw_error: fail")
}

func TestConfigCommandCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  max_jump_count: 5\n"), 0o644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "max_jump_count: 5")
}

func TestHeadlessCommand(t *testing.T) {
	out, err := execute(t, "headless", "--frames", "2", "--jump-frames", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "frames:   2")
	assert.Contains(t, out, "jump:     Jumping(2)")
	assert.Contains(t, out, "position: (700.00, 124.00, 0.00)")
}

func TestBadFlags(t *testing.T) {
	_, err := execute(t, "config", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "config", "--profile", "gpu")
	assert.ErrorContains(t, err, "unknown profile mode")

	_, err = execute(t, "headless", "--jump-frames", "-1")
	assert.ErrorContains(t, err, "must not be negative")
}
