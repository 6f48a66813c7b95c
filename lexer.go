// Completion: 100% - Core lexer complete, supports all ZenLang tokens
package main

import (
	"unicode"
)

// Token types for the ZenLang language
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_IDENTIFIER
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_KEYWORD
	TOKEN_OPERATOR    // + - * / =
	TOKEN_BRACE_OPEN  // {
	TOKEN_BRACE_CLOSE // }
	TOKEN_PAREN_OPEN  // (
	TOKEN_PAREN_CLOSE // )
	TOKEN_SEMICOLON   // ;
	TOKEN_COMMA       // ,
	TOKEN_NEWLINE
	TOKEN_PRAGMA      // #... to end of line
	TOKEN_ARROW       // => (match arm)
	TOKEN_PIPE        // | (pipe composition)
	TOKEN_ZONE_MARKER // @ (zone tag on a binding)
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_IDENTIFIER:
		return "identifier"
	case TOKEN_NUMBER:
		return "number"
	case TOKEN_STRING:
		return "string"
	case TOKEN_KEYWORD:
		return "keyword"
	case TOKEN_OPERATOR:
		return "operator"
	case TOKEN_BRACE_OPEN:
		return "{"
	case TOKEN_BRACE_CLOSE:
		return "}"
	case TOKEN_PAREN_OPEN:
		return "("
	case TOKEN_PAREN_CLOSE:
		return ")"
	case TOKEN_SEMICOLON:
		return ";"
	case TOKEN_COMMA:
		return ","
	case TOKEN_NEWLINE:
		return "newline"
	case TOKEN_PRAGMA:
		return "pragma"
	case TOKEN_ARROW:
		return "=>"
	case TOKEN_PIPE:
		return "|"
	case TOKEN_ZONE_MARKER:
		return "@"
	default:
		return "unknown"
	}
}

type Token struct {
	Type   TokenType
	Value  string
	Line   int
	Column int // Column position (1-indexed) where the token starts
}

// ZenLang keywords. Everything else that lexes like a word is an identifier.
var zenKeywords = map[string]bool{
	"let": true, "fn": true, "if": true, "else": true, "while": true,
	"for": true, "return": true, "class": true, "new": true,
	"match": true, "case": true, "zone": true, "curry": true,
	"pipe": true, "import": true, "export": true,
}

func isKeyword(word string) bool {
	return zenKeywords[word]
}

// Lexer for ZenLang source text. Tokenization is total: unrecognized bytes
// are skipped and unterminated strings are truncated at end of input, so
// NextToken always makes progress and always terminates.
type Lexer struct {
	input     string
	pos       int
	line      int
	lineStart int // Position where the current line starts
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, pos: 0, line: 1, lineStart: 0}
}

func (l *Lexer) peek() byte {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

func isIdentStart(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isIdentPart(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_'
}

func (l *Lexer) NextToken() Token {
	// Skip whitespace (except newlines) and anything the lexer does not
	// recognize. Skipping unknown bytes is the recovery policy, not an error.
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.pos++
			continue
		}
		if l.isTokenStart(ch) {
			break
		}
		l.pos++
	}

	tokenColumn := l.pos - l.lineStart + 1

	if l.pos >= len(l.input) {
		return Token{Type: TOKEN_EOF, Line: l.line, Column: tokenColumn}
	}
	ch := l.input[l.pos]

	// Newline
	if ch == '\n' {
		tok := Token{Type: TOKEN_NEWLINE, Value: "\n", Line: l.line, Column: tokenColumn}
		l.pos++
		l.line++
		l.lineStart = l.pos
		return tok
	}

	// Pragma line: # up to (not including) the newline
	if ch == '#' {
		start := l.pos
		for l.pos < len(l.input) && l.input[l.pos] != '\n' {
			l.pos++
		}
		return Token{Type: TOKEN_PRAGMA, Value: l.input[start:l.pos], Line: l.line, Column: tokenColumn}
	}

	// String literal: runs until the next unescaped quote. An unterminated
	// string is truncated at end of input, not rejected.
	if ch == '"' {
		l.pos++
		start := l.pos
		for l.pos < len(l.input) && l.input[l.pos] != '"' {
			if l.input[l.pos] == '\\' && l.pos+1 < len(l.input) {
				l.pos += 2
			} else {
				l.pos++
			}
		}
		value := l.input[start:l.pos]
		if l.pos < len(l.input) {
			l.pos++ // skip closing "
		}
		return Token{Type: TOKEN_STRING, Value: value, Line: l.line, Column: tokenColumn}
	}

	// Number: digits and dots. Multiple decimal points are accepted without
	// validation, so "12.3.4" lexes as one NUMBER token. Deliberately lax.
	if unicode.IsDigit(rune(ch)) {
		start := l.pos
		for l.pos < len(l.input) && (unicode.IsDigit(rune(l.input[l.pos])) || l.input[l.pos] == '.') {
			l.pos++
		}
		return Token{Type: TOKEN_NUMBER, Value: l.input[start:l.pos], Line: l.line, Column: tokenColumn}
	}

	// Identifier or keyword
	if isIdentStart(ch) {
		start := l.pos
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		value := l.input[start:l.pos]
		if isKeyword(value) {
			return Token{Type: TOKEN_KEYWORD, Value: value, Line: l.line, Column: tokenColumn}
		}
		return Token{Type: TOKEN_IDENTIFIER, Value: value, Line: l.line, Column: tokenColumn}
	}

	// Operators and punctuation
	switch ch {
	case '=':
		// Check for =>
		if l.peek() == '>' {
			l.pos += 2
			return Token{Type: TOKEN_ARROW, Value: "=>", Line: l.line, Column: tokenColumn}
		}
		l.pos++
		return Token{Type: TOKEN_OPERATOR, Value: "=", Line: l.line, Column: tokenColumn}
	case '+', '-', '*', '/':
		l.pos++
		return Token{Type: TOKEN_OPERATOR, Value: string(ch), Line: l.line, Column: tokenColumn}
	case '|':
		l.pos++
		return Token{Type: TOKEN_PIPE, Value: "|", Line: l.line, Column: tokenColumn}
	case '@':
		l.pos++
		return Token{Type: TOKEN_ZONE_MARKER, Value: "@", Line: l.line, Column: tokenColumn}
	case '{':
		l.pos++
		return Token{Type: TOKEN_BRACE_OPEN, Value: "{", Line: l.line, Column: tokenColumn}
	case '}':
		l.pos++
		return Token{Type: TOKEN_BRACE_CLOSE, Value: "}", Line: l.line, Column: tokenColumn}
	case '(':
		l.pos++
		return Token{Type: TOKEN_PAREN_OPEN, Value: "(", Line: l.line, Column: tokenColumn}
	case ')':
		l.pos++
		return Token{Type: TOKEN_PAREN_CLOSE, Value: ")", Line: l.line, Column: tokenColumn}
	case ';':
		l.pos++
		return Token{Type: TOKEN_SEMICOLON, Value: ";", Line: l.line, Column: tokenColumn}
	case ',':
		l.pos++
		return Token{Type: TOKEN_COMMA, Value: ",", Line: l.line, Column: tokenColumn}
	}

	// Unreachable as long as isTokenStart and this switch agree
	l.pos++
	return Token{Type: TOKEN_EOF, Line: l.line, Column: tokenColumn}
}

// isTokenStart reports whether a byte can begin a token
func (l *Lexer) isTokenStart(ch byte) bool {
	switch ch {
	case '\n', '#', '"', '=', '+', '-', '*', '/', '|', '@', '{', '}', '(', ')', ';', ',':
		return true
	}
	return unicode.IsDigit(rune(ch)) || isIdentStart(ch)
}

// TokenizeAll scans the whole input and returns the token sequence,
// terminated by a single EOF token. Tokenization never fails.
func TokenizeAll(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens
		}
	}
}
