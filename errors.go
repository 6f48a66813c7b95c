// Completion: 100% - Error handling complete, clear and helpful messages
package main

import (
	"fmt"
	"strings"
)

// ErrorLevel indicates the severity of a diagnostic
type ErrorLevel int

const (
	LevelWarning ErrorLevel = iota
	LevelError
	LevelFatal
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// ErrorCategory classifies the type of error
type ErrorCategory int

const (
	CategorySyntax ErrorCategory = iota
	CategorySemantic
	CategoryZone
	CategoryEmit
	CategoryInternal
)

func (c ErrorCategory) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategorySemantic:
		return "semantic"
	case CategoryZone:
		return "zone"
	case CategoryEmit:
		return "emit"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// SourceLocation represents a position in source code
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (loc SourceLocation) String() string {
	if loc.File == "" {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
}

// CompilerError represents a single compilation diagnostic
type CompilerError struct {
	Level      ErrorLevel
	Category   ErrorCategory
	Message    string
	Location   SourceLocation
	Suggestion string // "Did you mean 'x'?"
}

// Error implements the error interface
func (e CompilerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Format returns a formatted diagnostic with optional ANSI color
func (e CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if useColor {
		if e.Level == LevelWarning {
			sb.WriteString("\033[1;33m") // Bold yellow
		} else {
			sb.WriteString("\033[1;31m") // Bold red
		}
	}
	sb.WriteString(e.Level.String())
	sb.WriteString(": ")
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if e.Location.Line > 0 {
		if useColor {
			sb.WriteString("\033[1;34m") // Bold blue
		}
		sb.WriteString("  --> ")
		sb.WriteString(e.Location.String())
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if e.Suggestion != "" {
		if useColor {
			sb.WriteString("\033[1;32m") // Bold green
		}
		sb.WriteString("   help: ")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// ErrorCollector accumulates recoverable diagnostics during a compilation
// unit. Recovered errors never mutate the tables; they are recorded here and
// the walk continues.
type ErrorCollector struct {
	errors   []CompilerError
	warnings []CompilerError
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records a diagnostic
func (ec *ErrorCollector) Add(err CompilerError) {
	if err.Level == LevelWarning {
		ec.warnings = append(ec.warnings, err)
	} else {
		ec.errors = append(ec.errors, err)
	}
}

// HasErrors returns true if any errors were collected
func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

// ErrorCount returns the number of errors
func (ec *ErrorCollector) ErrorCount() int {
	return len(ec.errors)
}

// WarningCount returns the number of warnings
func (ec *ErrorCollector) WarningCount() int {
	return len(ec.warnings)
}

// Report formats all collected diagnostics for display
func (ec *ErrorCollector) Report(useColor bool) string {
	var sb strings.Builder
	for _, err := range ec.errors {
		sb.WriteString(err.Format(useColor))
	}
	for _, warn := range ec.warnings {
		sb.WriteString(warn.Format(useColor))
	}
	return sb.String()
}

// Helper constructors for the recoverable error kinds

// ImmutableRebindError reports a re-declaration of an assigned name
func ImmutableRebindError(name string, loc SourceLocation) CompilerError {
	return CompilerError{
		Level:      LevelError,
		Category:   CategorySemantic,
		Message:    fmt.Sprintf("variable '%s' is already assigned and cannot be changed (immutable)", name),
		Location:   loc,
		Suggestion: "ZenLang bindings are write-once; pick a new name",
	}
}

// DuplicateZoneError reports a zone declaration reusing an existing name
func DuplicateZoneError(name string, loc SourceLocation) CompilerError {
	return CompilerError{
		Level:    LevelError,
		Category: CategoryZone,
		Message:  fmt.Sprintf("memory zone '%s' already exists", name),
		Location: loc,
	}
}

// TooManyZonesError reports that the zone-count ceiling was reached
func TooManyZonesError(loc SourceLocation) CompilerError {
	return CompilerError{
		Level:    LevelError,
		Category: CategoryZone,
		Message:  fmt.Sprintf("too many memory zones (limit is %d)", MaxMemoryZones),
		Location: loc,
	}
}

// ZoneExhaustedError reports an allocation that would overflow a zone
func ZoneExhaustedError(zone string, need, free int, loc SourceLocation) CompilerError {
	return CompilerError{
		Level:      LevelError,
		Category:   CategoryZone,
		Message:    fmt.Sprintf("memory zone '%s' exhausted: need %d bytes, %d free", zone, need, free),
		Location:   loc,
		Suggestion: "declare the zone with a larger capacity",
	}
}

// UnwritableOutputError reports that the emitter cannot produce its
// artifact. This is the one fatal error kind: the run aborts non-zero.
func UnwritableOutputError(path string, cause error) CompilerError {
	return CompilerError{
		Level:    LevelFatal,
		Category: CategoryEmit,
		Message:  fmt.Sprintf("cannot write output file %s: %v", path, cause),
	}
}
