package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sivaosorg/simplelog"
)

// Conventional logger names.
const (
	CoreName   = "core"
	ClientName = "client"
)

var (
	// ErrNotInitialized is returned by Lookup before Init or after Shutdown.
	ErrNotInitialized = errors.New("registry: not initialized")

	// ErrUnknownLogger is returned by Lookup for a name that was never registered.
	ErrUnknownLogger = errors.New("registry: unknown logger")

	// ErrSharedTarget is returned by Init when the logger options register the
	// same target on more than one logger.
	ErrSharedTarget = errors.New("registry: target shared between loggers")
)

// Registry owns a fixed set of named loggers between Init and Shutdown.
type Registry struct {
	mu      sync.RWMutex
	names   []string
	opts    []simplelog.Option
	loggers map[string]*simplelog.Logger
}

// Option configures a Registry during creation.
type Option func(*Registry)

// WithNames registers additional logger names next to core and client.
func WithNames(names ...string) Option {
	return func(r *Registry) {
		for _, name := range names {
			if name != "" && !contains(r.names, name) {
				r.names = append(r.names, name)
			}
		}
	}
}

// WithLoggerOptions applies opts to every logger built by Init. Each logger
// owns its targets exclusively, so opts must not register targets:
// simplelog.WithTargets here would hand the same target to every logger and
// Init rejects it with ErrSharedTarget. Add targets per logger after Init.
func WithLoggerOptions(opts ...simplelog.Option) Option {
	return func(r *Registry) {
		r.opts = append(r.opts, opts...)
	}
}

// New creates an uninitialized Registry.
func New(opts ...Option) *Registry {
	r := &Registry{names: []string{CoreName, ClientName}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init builds every named logger. Calling it again before Shutdown does
// nothing. If the logger options make two loggers own the same target, no
// logger is installed and ErrSharedTarget is returned; the targets are left
// open since the caller still owns them.
func (r *Registry) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loggers != nil {
		return nil
	}
	loggers := make(map[string]*simplelog.Logger, len(r.names))
	owners := make(map[simplelog.Target]string)
	for _, name := range r.names {
		l := simplelog.New(r.opts...)
		for _, t := range l.Targets() {
			if owner, ok := owners[t]; ok {
				return fmt.Errorf("%w: %q and %q", ErrSharedTarget, owner, name)
			}
			owners[t] = name
		}
		loggers[name] = l
	}
	r.loggers = loggers
	return nil
}

// Initialized reports whether Init has run since the last Shutdown.
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers != nil
}

// Shutdown closes every logger and its targets. The Registry can be
// initialized again afterwards.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	loggers := r.loggers
	r.loggers = nil
	r.mu.Unlock()

	var errs []error
	for _, name := range r.names {
		l, ok := loggers[name]
		if !ok {
			continue
		}
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s logger: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the logger registered under name.
func (r *Registry) Lookup(name string) (*simplelog.Logger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.loggers == nil {
		return nil, ErrNotInitialized
	}
	l, ok := r.loggers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogger, name)
	}
	return l, nil
}

// Logger returns the logger registered under name, or nil.
func (r *Registry) Logger(name string) *simplelog.Logger {
	l, _ := r.Lookup(name)
	return l
}

// Core returns the core logger, or nil before Init.
func (r *Registry) Core() *simplelog.Logger { return r.Logger(CoreName) }

// Client returns the client logger, or nil before Init.
func (r *Registry) Client() *simplelog.Logger { return r.Logger(ClientName) }

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
