package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunWritesLogFile runs the demo at the info level and checks the file target.
func TestRunWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	require.NoError(t, run(options{level: "info", path: path, noColor: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.False(t, strings.HasPrefix(content, "previous run"), "file must be truncated without -append")
	assert.Contains(t, content, "All targets")
	assert.Contains(t, content, "test and 1.5")
	assert.Contains(t, content, "[ENGINE]")
	assert.NotContains(t, content, "Hello Dog!")
	assert.NotContains(t, content, "\x1b[")
}

// TestRunAppend verifies that -append keeps the previous content.
func TestRunAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	require.NoError(t, run(options{level: "verbose", path: path, append: true, noColor: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous run\n"))
	assert.Contains(t, string(data), "Hello Dog!")
}

// TestRunRejectsUnknownLevel verifies that a bad -level is reported.
func TestRunRejectsUnknownLevel(t *testing.T) {
	err := run(options{level: "loud", path: filepath.Join(t.TempDir(), "demo.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}
