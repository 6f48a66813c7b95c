// compile.go - Central state management and the declaration walk
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CompilationPhase tracks where a unit is in the pipeline. There is no
// backward transition: Start -> Declare (self-looping per declaration) ->
// Emit -> Done.
type CompilationPhase int

const (
	PhaseStart CompilationPhase = iota
	PhaseDeclare
	PhaseEmit
	PhaseDone
)

func (p CompilationPhase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseDeclare:
		return "declare"
	case PhaseEmit:
		return "emit"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// CompilerState owns the four tables for one compilation unit: pragma
// flags, zones, symbols, and functions. Nothing is shared between units; a
// host compiling units concurrently constructs one CompilerState each.
type CompilerState struct {
	Flags   *Pragmas
	Zones   *ZoneAllocator
	Symbols *SymbolTable
	Funcs   *FunctionTable
	Errors  *ErrorCollector

	file  string
	diag  io.Writer // Side channel for informational lines, never the artifact
	phase CompilationPhase
}

// NewCompilerState creates a fresh per-unit state with all tables
// initialized and diagnostics going to stderr.
func NewCompilerState(filename string) *CompilerState {
	return &CompilerState{
		Flags:   NewPragmas(),
		Zones:   NewZoneAllocator(),
		Symbols: NewSymbolTable(),
		Funcs:   NewFunctionTable(),
		Errors:  NewErrorCollector(),
		file:    filename,
		diag:    os.Stderr,
		phase:   PhaseStart,
	}
}

// SetDiagnostics redirects the informational side channel
func (cs *CompilerState) SetDiagnostics(w io.Writer) {
	cs.diag = w
}

// Phase returns the current compilation phase
func (cs *CompilerState) Phase() CompilationPhase {
	return cs.phase
}

func (cs *CompilerState) diagf(format string, args ...any) {
	fmt.Fprintf(cs.diag, format+"\n", args...)
}

func (cs *CompilerState) loc(tok Token) SourceLocation {
	return SourceLocation{File: cs.file, Line: tok.Line, Column: tok.Column}
}

// Compile tokenizes one unit and walks the declarations, mutating the
// tables. It can be called repeatedly (interactive mode feeds one line at a
// time); the tables accumulate.
func (cs *CompilerState) Compile(source string) {
	cs.phase = PhaseDeclare
	cs.walk(TokenizeAll(source))
}

// walk consumes one declaration token-group per iteration until EOF.
// Recovered errors drop the offending declaration, record a diagnostic, and
// leave every table unchanged.
func (cs *CompilerState) walk(tokens []Token) {
	i := 0
	for tokens[i].Type != TOKEN_EOF {
		tok := tokens[i]

		switch {
		case tok.Type == TOKEN_PRAGMA:
			// Pragmas are applied here, not in the lexer: first directive
			// seen for a flag wins for the remainder of the unit.
			if cs.Flags.Apply(tok.Value) {
				cs.diagf("Processed: %s", tok.Value)
			}
			i++

		case tok.Type == TOKEN_KEYWORD && tok.Value == "let":
			i = cs.walkLet(tokens, i)

		case tok.Type == TOKEN_KEYWORD && tok.Value == "zone":
			i = cs.walkZone(tokens, i)

		case tok.Type == TOKEN_KEYWORD && tok.Value == "fn":
			i = cs.walkFn(tokens, i)

		case tok.Type == TOKEN_KEYWORD && tok.Value == "curry":
			i = cs.walkCurry(tokens, i)

		case tok.Type == TOKEN_KEYWORD && tok.Value == "match":
			i = cs.walkMatch(tokens, i)

		default:
			// Anything else (control-flow keywords, operators, stray
			// tokens) is not compiled by this core.
			i++
		}
	}
}

// storageSize returns the number of bytes a value charges against its zone:
// 8 for a number, length plus terminator for a string.
func storageSize(tok Token) int {
	if tok.Type == TOKEN_STRING {
		return len(tok.Value) + 1
	}
	return 8
}

// walkLet handles: let name [@zone] = number|string
func (cs *CompilerState) walkLet(tokens []Token, i int) int {
	i++ // skip 'let'
	if tokens[i].Type != TOKEN_IDENTIFIER {
		return i
	}
	nameTok := tokens[i]
	name := nameTok.Value
	i++

	// Optional zone tag: @ident charges the binding against a named zone
	// instead of the current one.
	zoneID := cs.Zones.Current()
	if tokens[i].Type == TOKEN_ZONE_MARKER {
		i++
		if tokens[i].Type != TOKEN_IDENTIFIER {
			return i
		}
		id, ok := cs.Zones.Find(tokens[i].Value)
		if !ok {
			cs.diagf("Rejected %s: unknown zone '%s'", name, tokens[i].Value)
			cs.Errors.Add(CompilerError{
				Level:    LevelError,
				Category: CategoryZone,
				Message:  fmt.Sprintf("unknown zone '%s'", tokens[i].Value),
				Location: cs.loc(tokens[i]),
			})
			return i + 1
		}
		zoneID = id
		i++
	}

	if tokens[i].Type != TOKEN_OPERATOR || tokens[i].Value != "=" {
		return i
	}
	i++ // skip '='

	valTok := tokens[i]
	if valTok.Type != TOKEN_NUMBER && valTok.Type != TOKEN_STRING {
		return i
	}

	// Reject before any table is touched: a recovered declaration must
	// leave symbol table and zone accounting both unchanged.
	if existing, ok := cs.Symbols.Lookup(name); ok && existing.Assigned {
		cs.diagf("Rejected %s: already assigned (immutable)", name)
		cs.Errors.Add(ImmutableRebindError(name, cs.loc(nameTok)))
		return i + 1
	}
	if err := cs.Zones.Reserve(zoneID, storageSize(valTok)); err != nil {
		z := cs.Zones.Zone(zoneID)
		cs.diagf("Rejected %s: %v", name, err)
		cs.Errors.Add(ZoneExhaustedError(z.Name, storageSize(valTok), z.Free(), cs.loc(nameTok)))
		return i + 1
	}

	if valTok.Type == TOKEN_NUMBER {
		cs.Symbols.Declare(name, TypeNumber, zoneID)
		// ParseFloat only fails on shapes like 12.3.4, which the lexer
		// accepts on purpose; such a binding keeps the zero value.
		v, _ := strconv.ParseFloat(valTok.Value, 64)
		cs.Symbols.AssignNumber(name, v)
		cs.diagf("Assigned %s = %f", name, v)
	} else {
		cs.Symbols.Declare(name, TypeString, zoneID)
		cs.Symbols.AssignString(name, valTok.Value)
		cs.diagf("Assigned %s = %q", name, valTok.Value)
	}
	return i + 1
}

// walkZone handles: zone name [(capacity [KB|MB])]
func (cs *CompilerState) walkZone(tokens []Token, i int) int {
	i++ // skip 'zone'
	if tokens[i].Type != TOKEN_IDENTIFIER {
		return i
	}
	nameTok := tokens[i]
	name := nameTok.Value
	i++

	capacity := DefaultZoneCapacity
	if tokens[i].Type == TOKEN_PAREN_OPEN {
		i++
		if tokens[i].Type == TOKEN_NUMBER {
			n, err := strconv.Atoi(tokens[i].Value)
			if err == nil {
				capacity = n
			}
			i++
			// Optional unit suffix lexes as an identifier: 64KB is the
			// number 64 followed by the identifier KB.
			if tokens[i].Type == TOKEN_IDENTIFIER {
				switch tokens[i].Value {
				case "KB", "kb":
					capacity *= 1024
				case "MB", "mb":
					capacity *= 1024 * 1024
				}
				i++
			}
		}
		if tokens[i].Type == TOKEN_PAREN_CLOSE {
			i++
		}
	}

	_, err := cs.Zones.CreateZone(name, capacity, true)
	switch {
	case errors.Is(err, ErrDuplicateZone):
		cs.diagf("Rejected zone '%s': %v", name, err)
		cs.Errors.Add(DuplicateZoneError(name, cs.loc(nameTok)))
	case errors.Is(err, ErrTooManyZones):
		cs.diagf("Rejected zone '%s': %v", name, err)
		cs.Errors.Add(TooManyZonesError(cs.loc(nameTok)))
	default:
		cs.diagf("Memory zone '%s' created with %d bytes", name, capacity)
	}
	return i
}

// walkFn handles: fn name(a, b, c)
func (cs *CompilerState) walkFn(tokens []Token, i int) int {
	i++ // skip 'fn'
	if tokens[i].Type != TOKEN_IDENTIFIER {
		return i
	}
	fn := &Function{
		Name:      tokens[i].Value,
		UseBraces: cs.Flags.UseBraces,
	}
	i++

	if tokens[i].Type == TOKEN_PAREN_OPEN {
		i++
		for tokens[i].Type != TOKEN_PAREN_CLOSE && tokens[i].Type != TOKEN_EOF {
			if tokens[i].Type == TOKEN_IDENTIFIER {
				fn.Params = append(fn.Params, tokens[i].Value)
			}
			i++
		}
		if tokens[i].Type == TOKEN_PAREN_CLOSE {
			i++
		}
	}

	cs.Funcs.Add(fn)
	cs.diagf("Declared function: %s (%d parameters)", fn.Name, len(fn.Params))
	return i
}

// walkCurry handles: curry name N
func (cs *CompilerState) walkCurry(tokens []Token, i int) int {
	i++ // skip 'curry'
	if tokens[i].Type != TOKEN_IDENTIFIER {
		return i
	}
	name := tokens[i].Value
	i++
	if tokens[i].Type != TOKEN_NUMBER {
		return i
	}
	// The lexer accepts lax shapes like 1.5 as NUMBER; a curry count must
	// be a whole number, so anything Atoi rejects drops the statement.
	provided, err := strconv.Atoi(tokens[i].Value)
	if err != nil {
		cs.diagf("Cannot curry '%s': '%s' is not a whole argument count", name, tokens[i].Value)
		cs.Errors.Add(CompilerError{
			Level:    LevelError,
			Category: CategorySyntax,
			Message:  fmt.Sprintf("curry count '%s' is not a whole number", tokens[i].Value),
			Location: cs.loc(tokens[i]),
		})
		return i + 1
	}
	i++

	fn, ok := cs.Funcs.Lookup(name)
	if !ok {
		cs.diagf("Cannot curry unknown function '%s'", name)
		return i
	}
	curried := cs.Funcs.Curry(fn, provided, cs.Flags)
	if curried == nil {
		cs.diagf("Function '%s' not curried (auto-curry disabled or full application)", name)
		return i
	}
	cs.diagf("Auto-curried function '%s' created", curried.Name)
	return i
}

// walkMatch handles:
//
//	match name {
//	    case "lit" => result
//	    case * => result
//	}
//
// Arms are evaluated strictly in declaration order against the binding's
// textual value; the first match wins.
func (cs *CompilerState) walkMatch(tokens []Token, i int) int {
	matchTok := tokens[i]
	i++ // skip 'match'
	if tokens[i].Type != TOKEN_IDENTIFIER {
		return i
	}
	name := tokens[i].Value
	i++

	var arms []Arm
	i, arms = cs.parseArms(tokens, i)

	if !cs.Flags.PatternMatching {
		cs.diagf("Skipping match on '%s': pattern matching is not enabled", name)
		return i
	}

	binding, ok := cs.Symbols.Lookup(name)
	if !ok || !binding.Assigned {
		cs.diagf("Match on '%s': no assigned binding", name)
		cs.Errors.Add(CompilerError{
			Level:    LevelWarning,
			Category: CategorySemantic,
			Message:  fmt.Sprintf("match on unassigned or unknown variable '%s'", name),
			Location: cs.loc(matchTok),
		})
		return i
	}

	arm, matched := FirstMatch(arms, binding.Value())
	if !matched {
		cs.diagf("Match on '%s': no arm matched %q", name, binding.Value())
		return i
	}
	binding.Pattern = arm.Pattern
	cs.diagf("Match on '%s': %q => %q", name, binding.Value(), arm.Result)
	return i
}

// parseArms collects the ordered arm list of a match statement. Braces
// around the arm block are optional; arms end at the closing brace or at
// the first token-group that is not a case.
func (cs *CompilerState) parseArms(tokens []Token, i int) (int, []Arm) {
	braced := false
	i = skipNewlines(tokens, i)
	if tokens[i].Type == TOKEN_BRACE_OPEN {
		braced = true
		i++
	}

	var arms []Arm
	for {
		i = skipNewlines(tokens, i)
		if tokens[i].Type != TOKEN_KEYWORD || tokens[i].Value != "case" {
			break
		}
		i++ // skip 'case'

		pattern, ok := patternText(tokens[i])
		if !ok {
			continue
		}
		i++

		if tokens[i].Type != TOKEN_ARROW {
			continue
		}
		i++ // skip '=>'

		// The result expression is kept as a single token's text; bodies
		// are not compiled by this core.
		result := tokens[i].Value
		if tokens[i].Type != TOKEN_EOF {
			i++
		}
		// Consume the rest of the arm line
		for tokens[i].Type != TOKEN_NEWLINE && tokens[i].Type != TOKEN_BRACE_CLOSE && tokens[i].Type != TOKEN_EOF {
			i++
		}

		arms = append(arms, Arm{Pattern: pattern, Result: result})
	}

	if braced {
		for tokens[i].Type != TOKEN_BRACE_CLOSE && tokens[i].Type != TOKEN_EOF {
			i++
		}
		if tokens[i].Type == TOKEN_BRACE_CLOSE {
			i++
		}
	}
	return i, arms
}

// patternText extracts the pattern form of a case token: a literal, or the
// reserved wildcard (spelled * or default).
func patternText(tok Token) (string, bool) {
	switch tok.Type {
	case TOKEN_STRING, TOKEN_NUMBER, TOKEN_IDENTIFIER:
		return tok.Value, true
	case TOKEN_OPERATOR:
		if tok.Value == "*" {
			return WildcardPattern, true
		}
	}
	return "", false
}

func skipNewlines(tokens []Token, i int) int {
	for tokens[i].Type == TOKEN_NEWLINE || tokens[i].Type == TOKEN_SEMICOLON {
		i++
	}
	return i
}

// PrintSummary writes the final compilation statistics to the side channel
func (cs *CompilerState) PrintSummary() {
	cs.diagf("")
	cs.diagf("Compilation Statistics:")
	cs.diagf("Variables: %d", cs.Symbols.Len())
	cs.diagf("Functions: %d", cs.Funcs.Len())
	cs.diagf("Memory Zones: %d", cs.Zones.Len())
	cs.diagf("Brace Style: %s", onOff(cs.Flags.UseBraces))
	cs.diagf("Pattern Matching: %s", onOff(cs.Flags.PatternMatching))
	cs.diagf("Auto-currying: %s", onOff(cs.Flags.AutoCurry))
}
