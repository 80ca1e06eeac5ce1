package simplelog

import "github.com/fatih/color"

// Predefined severity levels, most severe first.
// Values are signed so a threshold can sit between or beyond the named levels.
const (
	// Unknown is used when the caller supplies no explicit level.
	Unknown Severity = 5

	// Failure represents imminent program failure
	Failure Severity = 4

	// Error denotes failures the program can continue after
	Error Severity = 3

	// Warning signifies potential issues that don't disrupt core functionality
	Warning Severity = 2

	// Important marks messages more relevant than regular info messages
	Important Severity = 1

	// Info indicates normal operational messages
	Info Severity = 0

	// Debug represents messages only relevant to the developer
	Debug Severity = -1

	// Verbose is the most detailed level
	Verbose Severity = -2
)

// DefaultLogFilePath is used by NewFileSink when no path is given.
// Its parent directory is not created.
const DefaultLogFilePath = "logs/LogFile.log"

// timeLayout renders UTC timestamps with second precision.
const timeLayout = "2006-01-02 15:04:05"

const unknownLabel = "[ UNKNOWN ]"

var severityLabels = map[Severity]string{
	Failure:   "[ FAILURE ]",
	Error:     "[  ERROR  ]",
	Warning:   "[ WARNING ]",
	Important: "[IMPORTANT]",
	Info:      "[  INFO   ]",
	Debug:     "[  DEBUG  ]",
	Verbose:   "[ VERBOSE ]",
}

var severityColors = map[Severity]color.Attribute{
	Failure:   color.FgRed,
	Error:     color.FgHiRed,
	Warning:   color.FgYellow,
	Important: color.FgGreen,
	Info:      color.FgBlue,
	Debug:     color.FgMagenta,
	Verbose:   color.FgMagenta,
}

var severityNames = map[Severity]string{
	Unknown:   "unknown",
	Failure:   "failure",
	Error:     "error",
	Warning:   "warning",
	Important: "important",
	Info:      "info",
	Debug:     "debug",
	Verbose:   "verbose",
}
