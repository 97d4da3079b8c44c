// Package dtfmt renders the four datetime value kinds back to their
// canonical textual form, shared by both the JSON and TOML serializers
// (spec.md §4.5) so the two encoders can never drift on how a second
// fraction or a zero offset prints.
package dtfmt

import (
	"fmt"
	"strings"

	"github.com/tomlforge/toml/value"
)

// OffsetDateTime renders v as e.g. "1979-05-27T07:32:00-08:00" or
// "...Z" for a zero offset.
func OffsetDateTime(v value.OffsetDateTime) string {
	s := date(v.Year, v.Month, v.Day) + "T" + timeOfDay(v.Hour, v.Minute, v.Second, v.Nanosecond)
	if v.OffsetMinutes == 0 {
		return s + "Z"
	}
	sign := "+"
	m := v.OffsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%s%02d:%02d", s, sign, m/60, m%60)
}

// LocalDateTime renders v as e.g. "1979-05-27T07:32:00".
func LocalDateTime(v value.LocalDateTime) string {
	return date(v.Year, v.Month, v.Day) + "T" + timeOfDay(v.Hour, v.Minute, v.Second, v.Nanosecond)
}

// LocalDate renders v as e.g. "1979-05-27".
func LocalDate(v value.LocalDate) string { return date(v.Year, v.Month, v.Day) }

// LocalTime renders v as e.g. "07:32:00" or "07:32:00.999999".
func LocalTime(v value.LocalTime) string { return timeOfDay(v.Hour, v.Minute, v.Second, v.Nanosecond) }

func date(y, m, d int) string { return fmt.Sprintf("%04d-%02d-%02d", y, m, d) }

func timeOfDay(h, m, s, ns int) string {
	base := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	if ns == 0 {
		return base
	}
	frac := fmt.Sprintf("%09d", ns)
	frac = strings.TrimRight(frac, "0")
	return base + "." + frac
}
