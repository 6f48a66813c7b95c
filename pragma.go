// Completion: 100% - Pragma directives complete
package main

import (
	"strings"
)

// Pragmas holds the per-unit configuration flags set by #pragma lines.
// Flags are resolved by the driver as pragma tokens are walked, never by the
// lexer itself, and the first directive seen for a flag holds for the
// remainder of the compilation unit.
type Pragmas struct {
	UseBraces       bool
	PatternMatching bool
	AutoCurry       bool

	braceStyleSet bool
}

// NewPragmas returns the default flag set: brace style on, pattern matching
// and auto-currying off until a pragma enables them.
func NewPragmas() *Pragmas {
	return &Pragmas{UseBraces: true}
}

// Apply interprets one pragma line and reports whether it named a known
// directive. Unknown pragma lines (including plain # comments) are ignored.
func (p *Pragmas) Apply(text string) bool {
	switch {
	case strings.Contains(text, "#pragma no-braces"):
		if !p.braceStyleSet {
			p.UseBraces = false
			p.braceStyleSet = true
		}
		return true
	case strings.Contains(text, "#pragma braces"):
		if !p.braceStyleSet {
			p.UseBraces = true
			p.braceStyleSet = true
		}
		return true
	case strings.Contains(text, "#pragma pattern-match"):
		p.PatternMatching = true
		return true
	case strings.Contains(text, "#pragma auto-curry"):
		p.AutoCurry = true
		return true
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
