package simplelog

import (
	"sync"
)

// Severity defines the importance of a log record as a signed integer.
// Higher values indicate more severe records.
type Severity int

// Logger fans every record that passes its threshold out to an ordered set of
// targets. It owns the targets added to it and closes them when it is closed.
type Logger struct {
	mu           sync.RWMutex
	verboseLevel int      // Records with a lower severity are discarded.
	targets      []Target // Owned targets in insertion order.
}

// Target is a sink that renders and writes one log record to one destination.
// The interface value returned by Logger.AddTarget doubles as the handle used
// to address that target later.
type Target interface {
	// Log renders and writes one record. Destination failures are handled by
	// the target itself and never reach the caller.
	Log(level Severity, message string)

	// SetPrefix replaces the text written, followed by a space, before every
	// record. An empty prefix disables it.
	SetPrefix(prefix string)

	// Close releases the target. A closed target drops further records.
	Close() error
}

// Option defines a functional option for configuring a Logger during creation.
type Option func(*Logger)

// ConsoleOption configures a ConsoleSink during creation.
type ConsoleOption func(*ConsoleSink)

// FileOption configures a FileSink during creation.
type FileOption func(*FileSink)

// locker is an interface that defines basic locking operations.
// If an io.Writer implements this interface, it is locked while a line is written.
type locker interface {
	Lock()
	Unlock()
}
