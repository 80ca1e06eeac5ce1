// Package simplelog provides a small severity-filtered logger that fans each
// record out to several targets, each with its own presentation settings.
//
// Key features:
//   - Eight ordered severity levels (Unknown, Failure, Error, Warning, Important,
//     Info, Debug, Verbose) compared as signed integers
//   - Console and file targets, added and removed at runtime
//   - Per-target prefix, ANSI colors, UTC timestamps and thread ids
//   - Brace-style positional formatting ("{1} and {0}")
//   - Synchronous writes; file targets open and close the file on every record
package simplelog

import (
	"errors"
)

// New creates a Logger with no targets whose threshold admits every level.
//
// Example:
//
//	logger := New(WithSeverityLevel(Info))
//	logger.AddTarget(NewConsoleSink())
//	logger.AddTarget(NewFileSink("logs/app.log", WithAppend(true)))
func New(opts ...Option) *Logger {
	l := &Logger{
		verboseLevel: Verbose.Int(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithVerboseLevel returns an Option that sets a raw integer threshold.
func WithVerboseLevel(level int) Option {
	return func(l *Logger) {
		l.verboseLevel = level
	}
}

// WithSeverityLevel returns an Option that sets the threshold to a named level.
func WithSeverityLevel(level Severity) Option {
	return func(l *Logger) {
		l.verboseLevel = level.Int()
	}
}

// WithTargets returns an Option that adds targets in the given order.
func WithTargets(targets ...Target) Option {
	return func(l *Logger) {
		for _, t := range targets {
			if t != nil {
				l.targets = append(l.targets, t)
			}
		}
	}
}

// AddTarget takes ownership of t and appends it after the targets already
// registered. The returned value is the handle to pass to RemoveTarget.
// Targets must be comparable, which pointer types always are.
func (l *Logger) AddTarget(t Target) Target {
	if t == nil {
		return nil
	}
	l.mu.Lock()
	l.targets = append(l.targets, t)
	l.mu.Unlock()
	return t
}

// RemoveTarget closes t and removes it, keeping the order of the remaining
// targets. Unknown or already removed handles are ignored.
func (l *Logger) RemoveTarget(t Target) {
	if t == nil {
		return
	}
	l.mu.Lock()
	idx := -1
	for i, owned := range l.targets {
		if owned == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	// Copy so that slices handed to in-flight Log calls stay intact.
	targets := make([]Target, 0, len(l.targets)-1)
	targets = append(targets, l.targets[:idx]...)
	targets = append(targets, l.targets[idx+1:]...)
	l.targets = targets
	l.mu.Unlock()

	_ = t.Close()
}

// Targets returns the registered targets in insertion order.
func (l *Logger) Targets() []Target {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Target(nil), l.targets...)
}

// Len returns the number of registered targets.
func (l *Logger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.targets)
}

// SetVerboseLevel replaces the threshold with a raw integer. Records whose
// severity is below it are discarded.
func (l *Logger) SetVerboseLevel(level int) {
	l.mu.Lock()
	l.verboseLevel = level
	l.mu.Unlock()
}

// SetSeverityLevel replaces the threshold with a named level.
func (l *Logger) SetSeverityLevel(level Severity) {
	l.SetVerboseLevel(level.Int())
}

// VerboseLevel returns the current threshold.
func (l *Logger) VerboseLevel() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verboseLevel
}

// Enabled reports whether a record at level would reach the targets.
func (l *Logger) Enabled(level Severity) bool {
	return level.Int() >= l.VerboseLevel()
}

// SetPrefix sets the prefix of every currently registered target.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.RLock()
	targets := l.targets
	l.mu.RUnlock()
	for _, t := range targets {
		t.SetPrefix(prefix)
	}
}

// snapshot returns the targets and true if level passes the threshold.
// The lock is released before targets run so a target may call back into
// the Logger.
func (l *Logger) snapshot(level Severity) ([]Target, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if level.Int() < l.verboseLevel {
		return nil, false
	}
	return l.targets, true
}

// Log sends message to every target in insertion order, unless level is
// below the threshold.
func (l *Logger) Log(level Severity, message string) {
	targets, _ := l.snapshot(level)
	for _, t := range targets {
		t.Log(level, message)
	}
}

// Logf interpolates format with args (see Interpolate) once and sends the
// result like Log. Filtered records are not formatted. A malformed format is
// returned as an error and nothing is logged, even when no target is
// registered. Without args the format is logged verbatim.
func (l *Logger) Logf(level Severity, format string, args ...any) error {
	targets, ok := l.snapshot(level)
	if !ok {
		return nil
	}
	message := format
	if len(args) > 0 {
		var err error
		if message, err = Interpolate(format, args...); err != nil {
			return err
		}
	}
	for _, t := range targets {
		t.Log(level, message)
	}
	return nil
}

// LogUnknown logs message at the Unknown level.
func (l *Logger) LogUnknown(message string) {
	l.Log(Unknown, message)
}

// Failure logs a formatted message at the Failure level.
func (l *Logger) Failure(format string, args ...any) error {
	return l.Logf(Failure, format, args...)
}

// Error logs a formatted message at the Error level.
func (l *Logger) Error(format string, args ...any) error {
	return l.Logf(Error, format, args...)
}

// Warning logs a formatted message at the Warning level.
func (l *Logger) Warning(format string, args ...any) error {
	return l.Logf(Warning, format, args...)
}

// Important logs a formatted message at the Important level.
func (l *Logger) Important(format string, args ...any) error {
	return l.Logf(Important, format, args...)
}

// Info logs a formatted message at the Info level.
func (l *Logger) Info(format string, args ...any) error {
	return l.Logf(Info, format, args...)
}

// Debug logs a formatted message at the Debug level.
func (l *Logger) Debug(format string, args ...any) error {
	return l.Logf(Debug, format, args...)
}

// Verbose logs a formatted message at the Verbose level.
func (l *Logger) Verbose(format string, args ...any) error {
	return l.Logf(Verbose, format, args...)
}

// Close closes and drops every owned target. The Logger stays usable and
// can receive new targets.
func (l *Logger) Close() error {
	l.mu.Lock()
	targets := l.targets
	l.targets = nil
	l.mu.Unlock()

	var errs []error
	for _, t := range targets {
		if err := t.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
