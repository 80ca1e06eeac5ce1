package simplelog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ConsoleSink writes records to standard output, optionally colored with ANSI
// escape sequences.
type ConsoleSink struct {
	sink
	writer     io.Writer
	addColors  bool
	manyColors bool
}

// stdoutIsTerminal reports whether standard output is attached to a terminal.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewConsoleSink creates a console target. By default it writes to a
// colorable standard output with colors, many colors, timestamps and thread
// ids all enabled.
//
// Example:
//
//	console := NewConsoleSink(WithColors(true, false), WithConsoleThreadID(false))
func NewConsoleSink(opts ...ConsoleOption) *ConsoleSink {
	c := &ConsoleSink{
		writer:     colorable.NewColorableStdout(),
		addColors:  true,
		manyColors: true,
	}
	c.sink.init()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithConsoleWriter redirects the sink to w instead of standard output.
// A nil writer is ignored.
func WithConsoleWriter(w io.Writer) ConsoleOption {
	return func(c *ConsoleSink) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithColors sets the initial color mode, see EnableColors.
func WithColors(enable, manyColors bool) ConsoleOption {
	return func(c *ConsoleSink) {
		c.addColors = enable
		c.manyColors = manyColors
	}
}

// WithColorDetection disables colors when standard output is not a terminal.
// Apply it after WithColors.
func WithColorDetection() ConsoleOption {
	return func(c *ConsoleSink) {
		if !stdoutIsTerminal() {
			c.addColors = false
		}
	}
}

// WithConsoleTime toggles the timestamp segment.
func WithConsoleTime(enable bool) ConsoleOption {
	return func(c *ConsoleSink) {
		c.addTime = enable
	}
}

// WithConsoleThreadID toggles the thread id segment.
func WithConsoleThreadID(enable bool) ConsoleOption {
	return func(c *ConsoleSink) {
		c.addThreadID = enable
	}
}

// WithConsolePrefix sets the initial prefix.
func WithConsolePrefix(prefix string) ConsoleOption {
	return func(c *ConsoleSink) {
		c.prefix = prefix
	}
}

// WithConsoleClock replaces the time source used for timestamps.
func WithConsoleClock(now func() time.Time) ConsoleOption {
	return func(c *ConsoleSink) {
		if now != nil {
			c.now = now
		}
	}
}

// EnableColors sets the color mode. With manyColors the whole line takes the
// severity color; otherwise only the label is colored and reset right after.
func (c *ConsoleSink) EnableColors(enable, manyColors bool) {
	c.mu.Lock()
	c.addColors = enable
	c.manyColors = manyColors
	c.mu.Unlock()
}

// DisableColors turns colors off, keeping the many-colors setting for a later
// EnableColors call.
func (c *ConsoleSink) DisableColors() {
	c.mu.Lock()
	c.addColors = false
	c.mu.Unlock()
}

// Log renders the record and writes it as a single write. Write errors are
// ignored.
func (c *ConsoleSink) Log(level Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	var b strings.Builder
	c.render(&b, level, message, c.addColors, c.manyColors)

	if lock, ok := c.writer.(locker); ok {
		lock.Lock()
		defer lock.Unlock()
	}
	_, _ = io.WriteString(c.writer, b.String())
}
