package simplelog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestFile(path string, opts ...FileOption) *FileSink {
	opts = append([]FileOption{
		WithFileClock(fixedClock),
		WithFileThreadID(false),
	}, opts...)
	return NewFileSink(path, opts...)
}

// TestFileSinkWritesLines verifies the line layout and that files are never colored.
func TestFileSinkWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := newTestFile(path, WithFilePrefix("[ENGINE]"))

	f.Log(Error, "first")
	f.Log(Unknown, "second")

	assert.Equal(t,
		"[ENGINE] 2024-03-01 12:30:45 [  ERROR  ] first\n"+
			"[ENGINE] 2024-03-01 12:30:45 [ UNKNOWN ] second\n",
		readFile(t, path))
}

// TestFileSinkTruncatesOnConstruction verifies that existing content is removed
// before the first record.
func TestFileSinkTruncatesOnConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	f := newTestFile(path)
	assert.Empty(t, readFile(t, path))

	f.Log(Info, "fresh")
	assert.Equal(t, "2024-03-01 12:30:45 [  INFO   ] fresh\n", readFile(t, path))
}

// TestFileSinkAppend verifies that append mode preserves existing content.
func TestFileSinkAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	f := newTestFile(path, WithAppend(true))
	assert.True(t, f.Appending())
	assert.Equal(t, "previous run\n", readFile(t, path))

	f.Log(Warning, "appended")
	assert.Equal(t, "previous run\n2024-03-01 12:30:45 [ WARNING ] appended\n", readFile(t, path))
}

// TestFileSinkCreatesFile verifies that truncation creates a missing file.
func TestFileSinkCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.log")
	newTestFile(path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// TestFileSinkMissingDirectory verifies that failures only produce diagnostics.
func TestFileSinkMissingDirectory(t *testing.T) {
	diag := new(bytes.Buffer)
	path := filepath.Join(t.TempDir(), "missing", "app.log")

	var f *FileSink
	require.NotPanics(t, func() {
		f = newTestFile(path, WithDiagnostics(zerolog.New(diag)))
		f.Log(Error, "lost")
	})

	lines := strings.Split(strings.TrimSpace(diag.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "truncate log file")
	assert.Contains(t, lines[1], `"level":"error"`)
	assert.Contains(t, lines[1], "open log file")
	assert.Contains(t, lines[1], "failed writing log file")
	assert.Contains(t, lines[1], `"path":`)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestFileSinkChangeFilePath verifies that records follow the new path and that
// the new file is not truncated.
func TestFileSinkChangeFilePath(t *testing.T) {
	dir := t.TempDir()
	first, second := filepath.Join(dir, "first.log"), filepath.Join(dir, "second.log")
	require.NoError(t, os.WriteFile(second, []byte("kept\n"), 0o644))

	f := newTestFile(first, WithFileTime(false))
	f.Log(Info, "one")
	f.ChangeFilePath(second)
	assert.Equal(t, second, f.Path())
	f.Log(Info, "two")

	assert.Equal(t, "[  INFO   ] one\n", readFile(t, first))
	assert.Equal(t, "kept\n[  INFO   ] two\n", readFile(t, second))
}

// TestFileSinkAppendToLogFile verifies the write mode setter.
func TestFileSinkAppendToLogFile(t *testing.T) {
	f := newTestFile(filepath.Join(t.TempDir(), "app.log"))
	assert.False(t, f.Appending())
	f.AppendToLogFile(true)
	assert.True(t, f.Appending())
}

// TestFileSinkDefaultPath verifies the fallback path. Append mode keeps the
// constructor from touching the file system.
func TestFileSinkDefaultPath(t *testing.T) {
	f := NewFileSink("", WithAppend(true))
	assert.Equal(t, DefaultLogFilePath, f.Path())
}

// TestFileSinkThreadID verifies the thread id segment.
func TestFileSinkThreadID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := newTestFile(path, WithFileTime(false), WithFileThreadID(true))

	f.Log(Important, "tid")
	assert.Regexp(t, `^\[IMPORTANT\] \[\d+\] tid\n$`, readFile(t, path))
}

// TestFileSinkClosed verifies that a closed sink drops records.
func TestFileSinkClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	f := newTestFile(path)
	require.NoError(t, f.Close())

	f.Log(Failure, "dropped")
	assert.Empty(t, readFile(t, path))
}

// TestLoggerFansOutToConsoleAndFile wires both sinks into one Logger.
func TestLoggerFansOutToConsoleAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	buf := new(bytes.Buffer)

	logger := New(WithSeverityLevel(Info))
	console := logger.AddTarget(newTestConsole(buf))
	file := logger.AddTarget(newTestFile(path))
	logger.SetPrefix("[ENGINE]")

	logger.Log(Debug, "hidden")
	require.NoError(t, logger.Logf(Error, "{1} and {0}", 1.5, "test"))

	assert.Equal(t, "[ENGINE] \x1b[91m2024-03-01 12:30:45 [  ERROR  ] test and 1.5\n\x1b[0m", buf.String())
	assert.Equal(t, "[ENGINE] 2024-03-01 12:30:45 [  ERROR  ] test and 1.5\n", readFile(t, path))

	logger.RemoveTarget(console)
	assert.Equal(t, []Target{file}, logger.Targets())
	logger.Log(Warning, "file only")
	assert.NotContains(t, buf.String(), "file only")
	assert.Contains(t, readFile(t, path), "file only")

	require.NoError(t, logger.Close())
	logger.Log(Failure, "after close")
	assert.NotContains(t, readFile(t, path), "after close")
}
