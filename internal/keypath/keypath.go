// Package keypath implements the dotted-key micro-grammar spec.md §4.4
// describes for the public façade's typed getters: splitting a
// caller-supplied lookup string such as `a."b c".d` into its key
// segments, honoring the same bare/quoted/dotted rules the document
// parser uses, but independent of it — a malformed key fails at the call
// site rather than producing a result-record diagnostic.
package keypath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomlforge/toml/internal/strescape"
)

// Split parses s into its dotted key segments. Whitespace around `.` is
// tolerated; a bare segment is trimmed of no surrounding space (none is
// permitted inside one), a quoted segment's content is decoded like a
// basic or literal string.
func Split(s string) ([]string, error) {
	p := &splitter{src: s}
	return p.run()
}

type splitter struct {
	src string
	pos int
}

func (p *splitter) run() ([]string, error) {
	var segs []string
	for {
		p.skipSpace()
		seg, err := p.segment()
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return segs, nil
		}
		if p.src[p.pos] != '.' {
			return nil, p.invalid(". or end-of-input")
		}
		p.pos++
	}
}

func (p *splitter) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *splitter) segment() (string, error) {
	if p.pos >= len(p.src) {
		return "", p.invalid("a key segment")
	}
	switch p.src[p.pos] {
	case '"':
		return p.quoted('"')
	case '\'':
		return p.quoted('\'')
	default:
		return p.bare()
	}
}

func (p *splitter) bare() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isBareKeyByte(c) {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.invalid("a key segment")
	}
	return p.src[start:p.pos], nil
}

func isBareKeyByte(c byte) bool {
	return c == '_' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (p *splitter) quoted(quote byte) (string, error) {
	start := p.pos
	p.pos++ // opening quote
	for {
		if p.pos >= len(p.src) {
			return "", fmt.Errorf("Invalid key: unterminated quoted segment")
		}
		if p.src[p.pos] == quote {
			raw := p.src[start+1 : p.pos]
			p.pos++
			if quote == '\'' {
				return raw, nil
			}
			return strescape.Decode(raw)
		}
		_, w := utf8.DecodeRuneInString(p.src[p.pos:])
		p.pos += w
	}
}

func (p *splitter) invalid(expected string) error {
	what := "end-of-input"
	if p.pos < len(p.src) {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		what = "'" + renderRune(r) + "'"
	}
	return fmt.Errorf("Invalid key: Unexpected %s, expected %s", what, expected)
}

// Join renders segs back into a dotted path string, quoting a segment
// only when it would otherwise be ambiguous (empty, or containing a
// dot, space, tab, or quote character). It is used to report a lookup
// path back to the caller in diagnostics. Quoted segments use Go string
// escapes and other characters outside the bare-key set are left
// unquoted, so the result does not always parse back with Split.
func Join(segs []string) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		if s == "" || strings.ContainsAny(s, ". \t\"'") {
			parts[i] = strconv.Quote(s)
		} else {
			parts[i] = s
		}
	}
	return strings.Join(parts, ".")
}

func renderRune(r rune) string {
	if r < 0x20 || r == utf8.RuneError {
		if r > 0xFFFF {
			return fmt.Sprintf("\\U%08X", r)
		}
		return fmt.Sprintf("\\u%04X", r)
	}
	return string(r)
}
