// Package toml implements a parser, in-memory document model, and
// serializer for the TOML configuration language (versions 0.4.0,
// 0.5.0, and 1.0.0). Parse, ParseBytes, and ParseReader are the entry
// points; each returns a Result holding the parsed root table and the
// diagnostics collected along the way, modeled on cue/parser's
// ParseFile/readSource pair — accept any of the common Go source
// shapes, never fail outright on malformed input, and let the caller
// decide how to react to a non-empty error list.
package toml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tomlforge/toml/encode/tojson"
	"github.com/tomlforge/toml/encode/totoml"
	"github.com/tomlforge/toml/internal/keypath"
	"github.com/tomlforge/toml/internal/perrors"
	"github.com/tomlforge/toml/parser"
	"github.com/tomlforge/toml/value"
	"github.com/tomlforge/toml/version"
)

// Option configures a Parse call, following cue/parser's functional
// option pattern.
type Option func(*config)

type config struct {
	ver version.Version
}

// WithVersion selects the TOML language revision to parse against. The
// default, used when this option is omitted, is version.Default
// (1.0.0).
func WithVersion(v version.Version) Option {
	return func(c *config) { c.ver = v }
}

// Result is the outcome of a parse: the root table (always non-nil,
// even when errors were reported — parsing never stops at the first
// failure) and the diagnostics collected while building it.
type Result struct {
	root *value.Table
	errs perrors.List
}

// HasErrors reports whether any diagnostic was collected.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// Errors returns every diagnostic collected during parsing, in the
// order they were first observed.
func (r *Result) Errors() []error {
	out := make([]error, len(r.errs))
	for i, e := range r.errs {
		out[i] = e
	}
	return out
}

// Root returns the document's root table.
func (r *Result) Root() *value.Table { return r.root }

// ToJSON serializes the document tree to JSON (spec.md §4.5).
func (r *Result) ToJSON() string { return tojson.Encode(r.root) }

// ToTOML serializes the document tree back to canonical TOML.
func (r *Result) ToTOML() string { return totoml.Encode(r.root) }

// Parse parses a TOML document from a string.
func Parse(src string, opts ...Option) *Result {
	c := resolve(opts)
	root, errs := parser.Parse(src, c.ver)
	return &Result{root: root, errs: errs}
}

// ParseBytes parses a TOML document from a UTF-8 byte slice.
func ParseBytes(src []byte, opts ...Option) *Result {
	return Parse(string(src), opts...)
}

// ParseReader parses a TOML document read in full from r.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return Parse(buf.String(), opts...), nil
}

func resolve(opts []Option) config {
	c := config{ver: version.Default}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Equal reports whether a and b are structurally equal (spec.md §4.4):
// same variant and payload; tables compare as order-insensitive
// key->value multisets, arrays compare elementwise.
func Equal(a, b value.Value) bool { return value.Equal(a, b) }

// ErrAbsent is returned by the typed getters when a lookup path
// resolves to nothing.
var ErrAbsent = fmt.Errorf("toml: key not present")

// errWrongType is returned by a typed getter when the path resolves to
// a value of a different kind than requested.
type errWrongType struct {
	path string
	want value.Kind
	got  value.Kind
}

func (e *errWrongType) Error() string {
	return fmt.Sprintf("toml: %s is a %s, not a %s", e.path, e.got, e.want)
}

func lookup(root *value.Table, path string) (value.Value, []string, error) {
	segs, err := keypath.Split(path)
	if err != nil {
		return nil, nil, err
	}
	var cur value.Value = root
	for _, seg := range segs {
		t, ok := cur.(*value.Table)
		if !ok {
			return nil, segs, ErrAbsent
		}
		v, ok := t.Get(seg)
		if !ok {
			return nil, segs, ErrAbsent
		}
		cur = v
	}
	return cur, segs, nil
}

func get(root *value.Table, path string, want value.Kind) (value.Value, error) {
	v, segs, err := lookup(root, path)
	if err != nil {
		return nil, err
	}
	if v.Kind() != want {
		return nil, &errWrongType{path: keypath.Join(segs), want: want, got: v.Kind()}
	}
	return v, nil
}

// GetString looks up path and returns its string value.
func (r *Result) GetString(path string) (string, error) {
	v, err := get(r.root, path, value.StringKind)
	if err != nil {
		return "", err
	}
	return string(v.(value.String)), nil
}

// GetLong looks up path and returns its integer value.
func (r *Result) GetLong(path string) (int64, error) {
	v, err := get(r.root, path, value.IntegerKind)
	if err != nil {
		return 0, err
	}
	return int64(v.(value.Integer)), nil
}

// GetDouble looks up path and returns its float value.
func (r *Result) GetDouble(path string) (float64, error) {
	v, err := get(r.root, path, value.FloatKind)
	if err != nil {
		return 0, err
	}
	return float64(v.(value.Float)), nil
}

// GetBoolean looks up path and returns its boolean value.
func (r *Result) GetBoolean(path string) (bool, error) {
	v, err := get(r.root, path, value.BooleanKind)
	if err != nil {
		return false, err
	}
	return bool(v.(value.Boolean)), nil
}

// GetArray looks up path and returns its array value.
func (r *Result) GetArray(path string) (*value.Array, error) {
	v, err := get(r.root, path, value.ArrayKind)
	if err != nil {
		return nil, err
	}
	return v.(*value.Array), nil
}

// GetTable looks up path and returns its table value.
func (r *Result) GetTable(path string) (*value.Table, error) {
	v, err := get(r.root, path, value.TableKind)
	if err != nil {
		return nil, err
	}
	return v.(*value.Table), nil
}

// GetOffsetDateTime looks up path and returns its offset-datetime value.
func (r *Result) GetOffsetDateTime(path string) (value.OffsetDateTime, error) {
	v, err := get(r.root, path, value.OffsetDateTimeKind)
	if err != nil {
		return value.OffsetDateTime{}, err
	}
	return v.(value.OffsetDateTime), nil
}

// GetLocalDateTime looks up path and returns its local-datetime value.
func (r *Result) GetLocalDateTime(path string) (value.LocalDateTime, error) {
	v, err := get(r.root, path, value.LocalDateTimeKind)
	if err != nil {
		return value.LocalDateTime{}, err
	}
	return v.(value.LocalDateTime), nil
}

// GetLocalDate looks up path and returns its local-date value.
func (r *Result) GetLocalDate(path string) (value.LocalDate, error) {
	v, err := get(r.root, path, value.LocalDateKind)
	if err != nil {
		return value.LocalDate{}, err
	}
	return v.(value.LocalDate), nil
}

// GetLocalTime looks up path and returns its local-time value.
func (r *Result) GetLocalTime(path string) (value.LocalTime, error) {
	v, err := get(r.root, path, value.LocalTimeKind)
	if err != nil {
		return value.LocalTime{}, err
	}
	return v.(value.LocalTime), nil
}
