// Package value implements the polymorphic TOML value tree: the closed
// set of value kinds from spec.md §3, the ordered Table and indexed Array
// container types, and the tree-building operations (§4.3) that enforce
// TOML's table-definition invariants while the parser drives construction.
//
// Values are tree-structured and owned exclusively by their parent
// container (§3 Lifecycle); there are no back-pointers and no weak
// references. Once a parse completes, callers must treat the returned
// tree as read-only — this package does not guard against external
// mutation of a Table or Array obtained through the public accessors.
package value

// Kind identifies which of the ten TOML value variants a Value holds.
type Kind int

const (
	StringKind Kind = iota
	IntegerKind
	FloatKind
	BooleanKind
	OffsetDateTimeKind
	LocalDateTimeKind
	LocalDateKind
	LocalTimeKind
	ArrayKind
	TableKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BooleanKind:
		return "boolean"
	case OffsetDateTimeKind:
		return "offset-datetime"
	case LocalDateTimeKind:
		return "local-datetime"
	case LocalDateKind:
		return "local-date"
	case LocalTimeKind:
		return "local-time"
	case ArrayKind:
		return "array"
	case TableKind:
		return "table"
	default:
		return "unknown"
	}
}

// Value is the sum type over all ten TOML value kinds. It is a closed
// variant set: String, Integer, Float, Boolean, OffsetDateTime,
// LocalDateTime, LocalDate, LocalTime, *Array, *Table are the only
// implementations.
type Value interface {
	Kind() Kind
}

// String is a TOML string value (basic, literal, or either multiline
// form — the lexical form is not retained, only the decoded content).
type String string

// Kind implements Value.
func (String) Kind() Kind { return StringKind }

// Integer is a TOML integer, 64-bit signed per spec.md §3.
type Integer int64

// Kind implements Value.
func (Integer) Kind() Kind { return IntegerKind }

// Float is a TOML float, an IEEE-754 double.
type Float float64

// Kind implements Value.
func (Float) Kind() Kind { return FloatKind }

// Boolean is a TOML true/false value.
type Boolean bool

// Kind implements Value.
func (Boolean) Kind() Kind { return BooleanKind }

// OffsetDateTime is a date-time with a UTC offset, e.g. 1979-05-27T07:32:00-08:00.
type OffsetDateTime struct {
	Year, Month, Day               int
	Hour, Minute, Second           int
	Nanosecond                     int
	OffsetMinutes                  int // minutes east of UTC; 0 for Z/z
}

// Kind implements Value.
func (OffsetDateTime) Kind() Kind { return OffsetDateTimeKind }

// LocalDateTime is a date-time without any offset, e.g. 1979-05-27T07:32:00.
type LocalDateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Nanosecond           int
}

// Kind implements Value.
func (LocalDateTime) Kind() Kind { return LocalDateTimeKind }

// LocalDate is a calendar date with no time component, e.g. 1979-05-27.
type LocalDate struct {
	Year, Month, Day int
}

// Kind implements Value.
func (LocalDate) Kind() Kind { return LocalDateKind }

// LocalTime is a time of day with no date or offset, e.g. 07:32:00.
type LocalTime struct {
	Hour, Minute, Second int
	Nanosecond           int
}

// Kind implements Value.
func (LocalTime) Kind() Kind { return LocalTimeKind }
