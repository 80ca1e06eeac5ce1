package simplelog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// FileSink appends records to a plain-text file. No handle is held between
// calls: every Log opens the file in append mode, writes one line and closes
// it. Lines are never colored.
type FileSink struct {
	sink
	path         string
	appendToFile bool
	mode         os.FileMode
	diag         zerolog.Logger
}

// NewFileSink creates a file target writing to path, or DefaultLogFilePath
// when path is empty. Unless WithAppend(true) is given the file is truncated
// immediately. The parent directory must already exist; failures are reported
// on the diagnostics stream, never returned.
func NewFileSink(path string, opts ...FileOption) *FileSink {
	if strings.TrimSpace(path) == "" {
		path = DefaultLogFilePath
	}
	f := &FileSink{
		path: path,
		mode: 0o644,
		diag: defaultDiagnostics(),
	}
	f.sink.init()
	for _, opt := range opts {
		opt(f)
	}
	if !f.appendToFile {
		if err := f.truncate(); err != nil {
			f.report(err)
		}
	}
	return f
}

func defaultDiagnostics() zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, TimeFormat: time.RFC3339}
	return zerolog.New(cw).With().Timestamp().Str("component", "simplelog").Logger()
}

// WithAppend keeps existing file content instead of truncating it at
// construction.
func WithAppend(appendToFile bool) FileOption {
	return func(f *FileSink) {
		f.appendToFile = appendToFile
	}
}

// WithFileTime toggles the timestamp segment.
func WithFileTime(enable bool) FileOption {
	return func(f *FileSink) {
		f.addTime = enable
	}
}

// WithFileThreadID toggles the thread id segment.
func WithFileThreadID(enable bool) FileOption {
	return func(f *FileSink) {
		f.addThreadID = enable
	}
}

// WithFilePrefix sets the initial prefix.
func WithFilePrefix(prefix string) FileOption {
	return func(f *FileSink) {
		f.prefix = prefix
	}
}

// WithFileMode sets the permission bits used when the file is created.
func WithFileMode(mode os.FileMode) FileOption {
	return func(f *FileSink) {
		f.mode = mode
	}
}

// WithDiagnostics replaces the stream that receives write failures.
// The default is a console writer on standard error.
func WithDiagnostics(diag zerolog.Logger) FileOption {
	return func(f *FileSink) {
		f.diag = diag
	}
}

// WithFileClock replaces the time source used for timestamps.
func WithFileClock(now func() time.Time) FileOption {
	return func(f *FileSink) {
		if now != nil {
			f.now = now
		}
	}
}

// Path returns the current destination.
func (f *FileSink) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

// ChangeFilePath redirects subsequent records to path. The new file is not
// truncated and its directory is not checked until the next Log.
func (f *FileSink) ChangeFilePath(path string) {
	f.mu.Lock()
	f.path = path
	f.mu.Unlock()
}

// AppendToLogFile sets the write mode flag. It only matters before
// construction-time truncation, so changing it later has no effect on writes,
// which always append.
func (f *FileSink) AppendToLogFile(appendToFile bool) {
	f.mu.Lock()
	f.appendToFile = appendToFile
	f.mu.Unlock()
}

// Appending reports the write mode flag.
func (f *FileSink) Appending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appendToFile
}

// Log renders the record and appends it to the file. A failure abandons the
// line and emits one diagnostic.
func (f *FileSink) Log(level Severity, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	var b strings.Builder
	f.render(&b, level, message, false, false)
	if err := f.write(b.String()); err != nil {
		f.report(err)
	}
}

func (f *FileSink) truncate() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, f.mode)
	if err != nil {
		return errors.Wrapf(err, "truncate log file %q", f.path)
	}
	return errors.Wrapf(file.Close(), "close log file %q", f.path)
}

func (f *FileSink) write(line string) (err error) {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, f.mode)
	if err != nil {
		return errors.Wrapf(err, "open log file %q", f.path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close log file %q", f.path)
		}
	}()
	if _, err = io.WriteString(file, line); err != nil {
		return errors.Wrapf(err, "write log file %q", f.path)
	}
	return nil
}

func (f *FileSink) report(err error) {
	f.diag.Error().Err(err).Str("path", f.path).Msg("failed writing log file")
}
