package lexer

import (
	"strings"

	"github.com/tomlforge/toml/internal/strescape"
	"github.com/tomlforge/toml/internal/token"
)

// scanBasicString reads a `"..."` or `"""..."""` string starting at the
// current '"'. allowMultiline distinguishes value position (where a
// triple-quote opens a multiline form) from key position (where only the
// single-line form is legal).
func (l *Lexer) scanBasicString(pos token.Position, allowMultiline bool) Token {
	multi := allowMultiline && l.peekByte() == '"' && l.peekAt(2) == '"'
	l.next() // opening quote
	if multi {
		l.next()
		l.next()
		return l.scanMultilineBasic(pos)
	}
	var raw strings.Builder
	for {
		switch {
		case l.ch < 0 || l.ch == '\n':
			l.errorf(pos, "String literal not terminated")
			return Token{Pos: pos, Kind: token.BASIC, Lit: raw.String(), Value: raw.String()}
		case l.ch == '"':
			l.next()
			decoded, err := strescape.Decode(raw.String())
			if err != nil {
				l.errorf(pos, "%s", err.Error())
				decoded = raw.String()
			}
			return Token{Pos: pos, Kind: token.BASIC, Lit: decoded, Value: decoded}
		case l.ch == '\\':
			raw.WriteByte('\\')
			l.next()
			if l.ch >= 0 {
				raw.WriteRune(l.ch)
				l.next()
			}
		case l.ch == '\t':
			l.checkRawTab()
			raw.WriteRune(l.ch)
			l.next()
		default:
			raw.WriteRune(l.ch)
			l.next()
		}
	}
}

// checkRawTab reports the version-gated diagnostic for an unescaped tab
// inside a basic string (spec.md §4.1): accepted from 1.0.0 onward,
// rejected in earlier versions in favor of the `\t` escape.
func (l *Lexer) checkRawTab() {
	if !l.ver.AllowsRawTab() {
		l.errorf(l.pos(), "Use \\t to represent a tab in a string (TOML versions before 1.0.0)")
	}
}

// scanMultilineBasic reads the body of a `"""..."""` string, the opening
// triple-quote already consumed. A newline immediately following the
// opening delimiter is trimmed; a backslash immediately before a line
// break consumes the break and all leading whitespace on the next line
// (the "line-ending backslash" rule).
func (l *Lexer) scanMultilineBasic(pos token.Position) Token {
	if l.ch == '\r' && l.peekByte() == '\n' {
		l.next()
		l.next()
	} else if l.ch == '\n' {
		l.next()
	}
	var raw strings.Builder
	for {
		switch {
		case l.ch < 0:
			l.errorf(pos, "String literal not terminated")
			return l.finishMultilineBasic(pos, raw.String())
		case l.ch == '"' && l.peekByte() == '"' && l.peekAt(2) == '"':
			// A run of more than three quotes greedy-matches: everything
			// but the final three belongs to the string's content (so
			// content ending in a quote mark, e.g. `""""...say."""""`,
			// round-trips instead of truncating at the first triple).
			for extra := l.quoteRunLength() - 3; extra > 0; extra-- {
				raw.WriteByte('"')
				l.next()
			}
			l.next()
			l.next()
			l.next()
			return l.finishMultilineBasic(pos, raw.String())
		case l.ch == '\\':
			if l.consumeLineContinuation(&raw) {
				continue
			}
			raw.WriteByte('\\')
			l.next()
			if l.ch >= 0 {
				raw.WriteRune(l.ch)
				l.next()
			}
		case l.ch == '\t':
			l.checkRawTab()
			raw.WriteRune(l.ch)
			l.next()
		default:
			raw.WriteRune(l.ch)
			l.next()
		}
	}
}

func (l *Lexer) finishMultilineBasic(pos token.Position, raw string) Token {
	decoded, err := strescape.Decode(raw)
	if err != nil {
		l.errorf(pos, "%s", err.Error())
		decoded = raw
	}
	return Token{Pos: pos, Kind: token.BASIC, Lit: decoded, Value: decoded}
}

// consumeLineContinuation handles a backslash that precedes only
// whitespace up to and including the next line break: per the multiline
// basic string grammar this swallows the break and all leading
// whitespace on the following line, contributing nothing to content. It
// reports false (and consumes nothing) if the backslash is an ordinary
// escape instead.
func (l *Lexer) consumeLineContinuation(raw *strings.Builder) bool {
	save := *l
	l.next() // backslash
	for l.ch == ' ' || l.ch == '\t' {
		l.next()
	}
	if l.ch == '\r' && l.peekByte() == '\n' {
		l.next()
	} else if l.ch != '\n' {
		*l = save
		return false
	}
	for {
		l.next()
		switch l.ch {
		case ' ', '\t':
			continue
		case '\r':
			if l.peekByte() == '\n' {
				continue
			}
			return true
		case '\n':
			continue
		default:
			return true
		}
	}
}

// scanLiteralString reads a `'...'` or `'''...'''` string. Literal
// strings have no escape processing at all.
func (l *Lexer) scanLiteralString(pos token.Position, allowMultiline bool) Token {
	multi := allowMultiline && l.peekByte() == '\'' && l.peekAt(2) == '\''
	l.next()
	if multi {
		l.next()
		l.next()
		return l.scanMultilineLiteral(pos)
	}
	var raw strings.Builder
	for {
		switch {
		case l.ch < 0 || l.ch == '\n':
			l.errorf(pos, "String literal not terminated")
			lit := raw.String()
			return Token{Pos: pos, Kind: token.LITERAL, Lit: lit, Value: lit}
		case l.ch == '\'':
			l.next()
			lit := raw.String()
			return Token{Pos: pos, Kind: token.LITERAL, Lit: lit, Value: lit}
		default:
			raw.WriteRune(l.ch)
			l.next()
		}
	}
}

func (l *Lexer) scanMultilineLiteral(pos token.Position) Token {
	if l.ch == '\r' && l.peekByte() == '\n' {
		l.next()
		l.next()
	} else if l.ch == '\n' {
		l.next()
	}
	var raw strings.Builder
	for {
		switch {
		case l.ch < 0:
			l.errorf(pos, "String literal not terminated")
			lit := raw.String()
			return Token{Pos: pos, Kind: token.LITERAL, Lit: lit, Value: lit}
		case l.ch == '\'' && l.peekByte() == '\'' && l.peekAt(2) == '\'':
			l.next()
			l.next()
			l.next()
			lit := raw.String()
			return Token{Pos: pos, Kind: token.LITERAL, Lit: lit, Value: lit}
		default:
			raw.WriteRune(l.ch)
			l.next()
		}
	}
}

// quoteRunLength counts the consecutive '"' characters starting at the
// current rune, without consuming any of them.
func (l *Lexer) quoteRunLength() int {
	n := 1
	for l.peekAt(n) == '"' {
		n++
	}
	return n
}

// peekAt returns the byte n bytes past the current read offset without
// consuming anything (n counts from rdOffset, so peekAt(1) is the same
// byte peekByte returns).
func (l *Lexer) peekAt(n int) byte {
	idx := l.rdOffset + n - 1
	if idx < 0 || idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}
