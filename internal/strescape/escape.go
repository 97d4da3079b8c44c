// Package strescape decodes the backslash escape sequences shared by
// TOML basic strings and the public key micro-grammar's quoted key
// segments (spec.md §4.1, §4.4). It knows nothing about quoting,
// multiline line-continuations, or raw-tab version gating — those are
// the caller's concern — only about turning `\n`, `\uXXXX`, and friends
// into the rune they denote.
package strescape

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Decode turns the escape sequences in s (the content between quotes,
// with no surrounding quote characters) into their decoded form. It
// reports an error message matching the diagnostics spec.md §4.1
// requires: "Invalid escape sequence '\\x'", "Invalid unicode escape
// sequence", or a message noting an unterminated escape.
func Decode(s string) (string, error) {
	var b []byte
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			r, w := decodeRuneInString(s[i:])
			b = appendRune(b, r)
			i += w
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("Escape sequence not terminated")
		}
		e := s[i+1]
		switch e {
		case 'b':
			b = append(b, '\b')
			i += 2
		case 't':
			b = append(b, '\t')
			i += 2
		case 'n':
			b = append(b, '\n')
			i += 2
		case 'f':
			b = append(b, '\f')
			i += 2
		case 'r':
			b = append(b, '\r')
			i += 2
		case '"':
			b = append(b, '"')
			i += 2
		case '\\':
			b = append(b, '\\')
			i += 2
		case 'u', 'U':
			n := 4
			if e == 'U' {
				n = 8
			}
			if i+2+n > len(s) {
				return "", fmt.Errorf("Escape sequence not terminated")
			}
			hex := s[i+2 : i+2+n]
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", fmt.Errorf("Invalid unicode escape sequence")
			}
			r := rune(v)
			if r > utf8.MaxRune || (0xD800 <= r && r < 0xE000) {
				return "", fmt.Errorf("Invalid unicode escape sequence")
			}
			b = appendRune(b, r)
			i += 2 + n
		default:
			return "", fmt.Errorf("Invalid escape sequence '\\%c'", e)
		}
	}
	return string(b), nil
}

func decodeRuneInString(s string) (rune, int) {
	r, w := utf8.DecodeRuneInString(s)
	return r, w
}

func appendRune(b []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(b, buf[:n]...)
}
