package main

import (
	"testing"
)

// TestPragmaDefaults tests the default flag set
func TestPragmaDefaults(t *testing.T) {
	p := NewPragmas()
	if !p.UseBraces {
		t.Error("Brace style should default to on")
	}
	if p.PatternMatching || p.AutoCurry {
		t.Error("Pattern matching and auto-currying should default to off")
	}
}

// TestPragmaApply tests directive recognition
func TestPragmaApply(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		recognized bool
		check      func(p *Pragmas) bool
	}{
		{"braces", "#pragma braces", true, func(p *Pragmas) bool { return p.UseBraces }},
		{"no_braces", "#pragma no-braces", true, func(p *Pragmas) bool { return !p.UseBraces }},
		{"pattern_match", "#pragma pattern-match", true, func(p *Pragmas) bool { return p.PatternMatching }},
		{"auto_curry", "#pragma auto-curry", true, func(p *Pragmas) bool { return p.AutoCurry }},
		{"plain_comment", "# just a comment", false, func(p *Pragmas) bool { return true }},
		{"unknown_directive", "#pragma warp-speed", false, func(p *Pragmas) bool { return true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPragmas()
			if got := p.Apply(tt.text); got != tt.recognized {
				t.Errorf("Apply(%q) = %v, want %v", tt.text, got, tt.recognized)
			}
			if !tt.check(p) {
				t.Errorf("Apply(%q) left flags in the wrong state: %+v", tt.text, p)
			}
		})
	}
}

// TestPragmaFirstSeenWins tests that the first brace-style directive holds
func TestPragmaFirstSeenWins(t *testing.T) {
	p := NewPragmas()
	p.Apply("#pragma no-braces")
	p.Apply("#pragma braces")
	if p.UseBraces {
		t.Error("Second directive overrode the first")
	}

	q := NewPragmas()
	q.Apply("#pragma braces")
	q.Apply("#pragma no-braces")
	if !q.UseBraces {
		t.Error("Second directive overrode the first")
	}
}

// TestPragmaFlagsHoldOnceSet tests that enable flags never flip back
func TestPragmaFlagsHoldOnceSet(t *testing.T) {
	p := NewPragmas()
	p.Apply("#pragma pattern-match")
	p.Apply("#pragma auto-curry")
	p.Apply("# some unrelated line")
	if !p.PatternMatching || !p.AutoCurry {
		t.Error("Flags did not hold for the remainder of the unit")
	}
}
