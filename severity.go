package simplelog

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Int returns the numeric value used for threshold comparisons.
func (s Severity) Int() int {
	return int(s)
}

// String returns the lower-case name of the level, or "unknown" for values
// outside the named set.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return severityNames[Unknown]
}

// Label returns the fixed-width bracketed label written in every line,
// e.g. "[  ERROR  ]". Unknown and unnamed values render as "[ UNKNOWN ]".
func (s Severity) Label() string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return unknownLabel
}

// Color returns the ANSI foreground attribute of the level. Unknown and
// unnamed values use bright black.
func (s Severity) Color() color.Attribute {
	if attr, ok := severityColors[s]; ok {
		return attr
	}
	return color.FgHiBlack
}

// ParseSeverity resolves a level name such as "warning" (case-insensitive).
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, n := range severityNames {
		if n == name {
			return level, nil
		}
	}
	return Unknown, errors.Errorf("simplelog: unknown severity %q", name)
}
