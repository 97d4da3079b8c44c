// Package totoml serializes a parsed TOML document tree back to
// canonical TOML (spec.md §4.5): leaf assignments appear within their
// enclosing table's header block, subtables follow their parent's
// leaves under explicit `[a.b.c]` headers, and arrays-of-tables use
// `[[a.b]]`. The encoder does not distinguish a table's original
// syntactic origin (`[header]`, `{ inline }`, or a dotted-key
// intermediate) — spec.md §4.4's structural equality ignores table
// flags entirely, so every table renders as a header block except when
// nested inside a literal array, where it must render as `{ ... }`.
package totoml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomlforge/toml/internal/dtfmt"
	"github.com/tomlforge/toml/value"
)

// Encode renders root as a complete TOML document.
func Encode(root *value.Table) string {
	var b strings.Builder
	emitTable(&b, root, nil)
	return strings.TrimPrefix(b.String(), "\n")
}

func isContainer(v value.Value) bool {
	if t, ok := v.(*value.Array); ok {
		return t.IsTableArray()
	}
	_, ok := v.(*value.Table)
	return ok
}

func emitTable(b *strings.Builder, t *value.Table, path []string) {
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		if isContainer(v) {
			continue
		}
		writeKey(b, k)
		b.WriteString(" = ")
		writeValue(b, v)
		b.WriteByte('\n')
	}
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		switch vv := v.(type) {
		case *value.Table:
			childPath := appendPath(path, k)
			b.WriteByte('\n')
			b.WriteString("[" + renderPath(childPath) + "]\n")
			emitTable(b, vv, childPath)
		case *value.Array:
			if !vv.IsTableArray() {
				continue
			}
			childPath := appendPath(path, k)
			for _, el := range vv.Elements() {
				et := el.(*value.Table)
				b.WriteByte('\n')
				b.WriteString("[[" + renderPath(childPath) + "]]\n")
				emitTable(b, et, childPath)
			}
		}
	}
}

func appendPath(path []string, k string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = k
	return out
}

func renderPath(path []string) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = renderKeySegment(s)
	}
	return strings.Join(parts, ".")
}

func renderKeySegment(s string) string {
	if isBareKey(s) {
		return s
	}
	var b strings.Builder
	writeTOMLString(&b, s)
	return b.String()
}

func writeKey(b *strings.Builder, k string) {
	b.WriteString(renderKeySegment(k))
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		return false
	}
	return true
}

func writeValue(b *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case value.String:
		writeTOMLString(b, string(t))
	case value.Integer:
		fmt.Fprintf(b, "%d", int64(t))
	case value.Float:
		writeFloat(b, float64(t))
	case value.Boolean:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.OffsetDateTime:
		b.WriteString(dtfmt.OffsetDateTime(t))
	case value.LocalDateTime:
		b.WriteString(dtfmt.LocalDateTime(t))
	case value.LocalDate:
		b.WriteString(dtfmt.LocalDate(t))
	case value.LocalTime:
		b.WriteString(dtfmt.LocalTime(t))
	case *value.Array:
		writeInlineArray(b, t)
	case *value.Table:
		writeInlineTable(b, t)
	}
}

func writeInlineArray(b *strings.Builder, a *value.Array) {
	b.WriteByte('[')
	for i, el := range a.Elements() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, el)
	}
	b.WriteByte(']')
}

func writeInlineTable(b *strings.Builder, t *value.Table) {
	keys := t.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{ ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeKey(b, k)
		b.WriteString(" = ")
		v, _ := t.Get(k)
		writeValue(b, v)
	}
	b.WriteString(" }")
}

func writeFloat(b *strings.Builder, f float64) {
	switch {
	case math.IsNaN(f):
		b.WriteString("nan")
		return
	case math.IsInf(f, 1):
		b.WriteString("inf")
		return
	case math.IsInf(f, -1):
		b.WriteString("-inf")
		return
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	b.WriteString(s)
}

func writeTOMLString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
