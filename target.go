package simplelog

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// sink holds the presentation state shared by every target kind and renders
// lines in a fixed order. Concrete sinks embed it and only choose the
// destination and whether colors apply.
type sink struct {
	mu          sync.Mutex
	prefix      string
	addTime     bool
	addThreadID bool
	closed      bool
	now         func() time.Time
}

// init applies the defaults shared by every sink: timestamp and thread id on.
func (s *sink) init() {
	s.addTime = true
	s.addThreadID = true
	s.now = time.Now
}

// SetPrefix replaces the text written, followed by a space, before every
// subsequent record. An empty prefix disables it.
func (s *sink) SetPrefix(prefix string) {
	s.mu.Lock()
	s.prefix = prefix
	s.mu.Unlock()
}

// Prefix returns the current prefix.
func (s *sink) Prefix() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefix
}

// SetAddTime toggles the UTC timestamp segment.
func (s *sink) SetAddTime(enable bool) {
	s.mu.Lock()
	s.addTime = enable
	s.mu.Unlock()
}

// SetAddThreadID toggles the bracketed thread identifier segment.
func (s *sink) SetAddThreadID(enable bool) {
	s.mu.Lock()
	s.addThreadID = enable
	s.mu.Unlock()
}

// Close marks the sink closed. Records logged afterwards are dropped.
func (s *sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// render writes one complete line into b. Callers must hold s.mu.
//
// Order: prefix, color start, timestamp, label, thread id, message, newline,
// color reset. With colors but not manyColors only the label is wrapped.
func (s *sink) render(b *strings.Builder, level Severity, message string, colors, manyColors bool) {
	b.Grow(len(s.prefix) + len(message) + 64)
	if s.prefix != "" {
		b.WriteString(s.prefix)
		b.WriteByte(' ')
	}
	if colors && manyColors {
		b.WriteString(sgr(level.Color()))
	}
	if s.addTime {
		b.WriteString(s.now().UTC().Format(timeLayout))
		b.WriteByte(' ')
	}
	if colors && !manyColors {
		b.WriteString(sgr(level.Color()))
		b.WriteString(level.Label())
		b.WriteString(sgr(color.Reset))
	} else {
		b.WriteString(level.Label())
	}
	b.WriteByte(' ')
	if s.addThreadID {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(threadID()))
		b.WriteString("] ")
	}
	b.WriteString(message)
	b.WriteByte('\n')
	if colors && manyColors {
		b.WriteString(sgr(color.Reset))
	}
}

// sgr returns the ANSI escape sequence selecting attr.
func sgr(attr color.Attribute) string {
	return "\x1b[" + strconv.Itoa(int(attr)) + "m"
}
