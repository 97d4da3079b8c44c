// Package tojson serializes a parsed TOML document tree to JSON
// (spec.md §4.5): two-space-indented, insertion-order object keys,
// datetimes rendered as quoted ISO-8601 strings, and the usual JSON
// escaping for string values.
package tojson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomlforge/toml/internal/dtfmt"
	"github.com/tomlforge/toml/value"
)

// Encode renders root as a JSON object.
func Encode(root *value.Table) string {
	var b strings.Builder
	writeValue(&b, root, 0)
	b.WriteByte('\n')
	return b.String()
}

func writeValue(b *strings.Builder, v value.Value, indent int) {
	switch t := v.(type) {
	case value.String:
		writeJSONString(b, string(t))
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
		writeJSONString(b, dtfmt.OffsetDateTime(t))
	case value.LocalDateTime:
		writeJSONString(b, dtfmt.LocalDateTime(t))
	case value.LocalDate:
		writeJSONString(b, dtfmt.LocalDate(t))
	case value.LocalTime:
		writeJSONString(b, dtfmt.LocalTime(t))
	case *value.Array:
		writeArray(b, t, indent)
	case *value.Table:
		writeTable(b, t, indent)
	}
}

func writeArray(b *strings.Builder, a *value.Array, indent int) {
	if a.Len() == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString("[\n")
	inner := indent + 1
	for i, el := range a.Elements() {
		writeIndent(b, inner)
		writeValue(b, el, inner)
		if i < a.Len()-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeIndent(b, indent)
	b.WriteByte(']')
}

func writeTable(b *strings.Builder, t *value.Table, indent int) {
	keys := t.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	inner := indent + 1
	for i, k := range keys {
		writeIndent(b, inner)
		writeJSONString(b, k)
		b.WriteString(" : ")
		v, _ := t.Get(k)
		writeValue(b, v, inner)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	writeIndent(b, indent)
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteString("  ")
	}
}

func writeFloat(b *strings.Builder, f float64) {
	b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func writeJSONString(b *strings.Builder, s string) {
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
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
