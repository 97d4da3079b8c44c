package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomlforge/toml/internal/token"
)

// State classifies why a Table exists and what may still happen to it.
// This is the enum DESIGN NOTES calls for in place of the scattered
// boolean flags a naive port would carry: each value below corresponds
// to exactly one creation path, and the promotion rule (Implicit ->
// ExplicitHeader, exactly once) is the only transition between states.
type State int

const (
	// StateImplicit is an intermediate table created while walking a
	// `[header]` or `[[header]]` path. It may be promoted to
	// StateExplicitHeader by exactly one later `[header]` naming it
	// directly.
	StateImplicit State = iota
	// StateExplicitHeader was introduced by a `[header]` line, or is an
	// Implicit table that has since been promoted.
	StateExplicitHeader
	// StateDottedIntermediate was created as an intermediate table while
	// resolving a dotted key in an assignment. A later `[header]` naming
	// it directly is a redefinition error; dotted keys in later
	// assignments, and headers for tables below it, may still add to it.
	StateDottedIntermediate
	// StateInlineLiteral is the root of a `{ ... }` literal. It is sealed
	// the moment the literal's closing brace is reached.
	StateInlineLiteral
	// StateArrayTableElement is one element of an array-of-tables,
	// created by `[[header]]`.
	StateArrayTableElement
)

// entry is one binding in a Table: the bound value and the source
// position of the token that introduced it (spec.md §3: "Each entry
// records the (line, column) of its defining token").
type entry struct {
	value Value
	pos   token.Position
}

// Table is TOML's ordered key -> Value mapping (spec.md §3). Iteration
// over Keys reflects source-appearance order, never map order.
type Table struct {
	keys    []string
	entries map[string]*entry
	state   State
}

// NewTable creates an empty table in the given state, used by the tree
// builder while constructing the document. Application code parsing TOML
// never needs to call this directly; it exists so the builder (which
// shares this package) can allocate new tables without a second,
// parallel "private" table type.
func NewTable(state State) *Table {
	return &Table{entries: make(map[string]*entry), state: state}
}

// Kind implements Value.
func (*Table) Kind() Kind { return TableKind }

// Len reports the number of direct entries in t.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the table's keys in source-appearance order. Callers must
// not mutate the returned slice.
func (t *Table) Keys() []string { return t.keys }

// Get returns the value bound to key, and whether it is present.
func (t *Table) Get(key string) (Value, bool) {
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// EntryPosition returns the position of the token that bound key, and
// whether key is present.
func (t *Table) EntryPosition(key string) (token.Position, bool) {
	e, ok := t.entries[key]
	if !ok {
		return token.NoPos, false
	}
	return e.pos, true
}

// State reports why this table exists.
func (t *Table) State() State { return t.state }

func (t *Table) sealed() bool {
	return t.state == StateInlineLiteral
}

// bind records key -> v at pos, appending key to the order if it is new.
func (t *Table) bind(key string, v Value, pos token.Position) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.entries[key] = &entry{value: v, pos: pos}
}

// renderPath joins key segments the way redefinition diagnostics cite
// them: dotted, quoting a segment only when it contains a character that
// would make the joined form ambiguous.
func renderPath(segments []string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		if s == "" || strings.ContainsAny(s, ". \t\"'") {
			parts[i] = strconv.Quote(s)
		} else {
			parts[i] = s
		}
	}
	return strings.Join(parts, ".")
}

// walk resolves all but the caller-supplied final segment, creating
// tables in state newState for any segment that does not yet exist.
// descendArrays controls whether stepping onto an array-of-tables
// continues into its currently-open element (true, the `[header]` walk
// rule from spec.md §4.3) or is rejected outright (false, the rule for
// dotted keys in assignments and inline tables).
func walk(root *Table, segments []string, pos token.Position, newState State, descendArrays bool) (*Table, error) {
	cur := root
	for i, seg := range segments {
		val, exists := cur.Get(seg)
		if !exists {
			nt := NewTable(newState)
			cur.bind(seg, nt, pos)
			cur = nt
			continue
		}
		entryPos, _ := cur.EntryPosition(seg)
		switch v := val.(type) {
		case *Table:
			if v.sealed() {
				return nil, fmt.Errorf("%s previously defined at %s", renderPath(segments[:i+1]), entryPos)
			}
			cur = v
		case *Array:
			if !descendArrays || !v.tableArray {
				return nil, fmt.Errorf("%s is not a table (previously defined at %s)", renderPath(segments[:i+1]), entryPos)
			}
			cur = v.Current()
		default:
			return nil, fmt.Errorf("%s is not a table (previously defined at %s)", renderPath(segments[:i+1]), entryPos)
		}
	}
	return cur, nil
}

// SetValue implements spec.md §4.3 set_value: it walks path relative to
// root (typically the current assignment scope), creating
// DottedIntermediate tables for any missing intermediate segment, and
// binds value at the final segment. It is an error for the final segment
// to already be bound, or for the walk to pass through a sealed table.
func SetValue(root *Table, path []string, val Value, pos token.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("empty key")
	}
	parent, err := walk(root, path[:len(path)-1], pos, StateDottedIntermediate, false)
	if err != nil {
		return err
	}
	last := path[len(path)-1]
	if existingPos, exists := parent.EntryPosition(last); exists {
		return fmt.Errorf("%s previously defined at %s", renderPath(path), existingPos)
	}
	parent.bind(last, val, pos)
	return nil
}

// DefineTable implements spec.md §4.3 define_table: path is resolved
// from root (always the document root — header paths are absolute), with
// Implicit intermediates created or reused along the way and the
// `[header]` walk's array-of-tables "last element" rule in effect. The
// final segment must be absent (a new explicit table is created) or an
// Implicit table that has not yet been promoted (promoted in place);
// otherwise the table was already explicit or is sealed, and this is a
// redefinition error.
func DefineTable(root *Table, path []string, pos token.Position) (*Table, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty table key")
	}
	parent, err := walk(root, path[:len(path)-1], pos, StateImplicit, true)
	if err != nil {
		return nil, err
	}
	last := path[len(path)-1]
	val, exists := parent.Get(last)
	if !exists {
		nt := NewTable(StateExplicitHeader)
		parent.bind(last, nt, pos)
		return nt, nil
	}
	entryPos, _ := parent.EntryPosition(last)
	switch v := val.(type) {
	case *Table:
		if v.state == StateImplicit {
			v.state = StateExplicitHeader
			parent.bind(last, v, pos) // refresh the citation position to this header
			return v, nil
		}
		return nil, fmt.Errorf("%s previously defined at %s", renderPath(path), entryPos)
	case *Array:
		return nil, fmt.Errorf("%s is not a table (previously defined at %s)", renderPath(path), entryPos)
	default:
		return nil, fmt.Errorf("%s is not a table (previously defined at %s)", renderPath(path), entryPos)
	}
}

// DefineArrayTable implements spec.md §4.3 define_array_table: path is
// resolved from root using the same Implicit/array-descent rules as
// DefineTable. The final segment must be absent (a new table array is
// created with one element) or an existing table array (a new element is
// appended); a literal array or any non-array value at that position is
// an error.
func DefineArrayTable(root *Table, path []string, pos token.Position) (*Table, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty table key")
	}
	parent, err := walk(root, path[:len(path)-1], pos, StateImplicit, true)
	if err != nil {
		return nil, err
	}
	last := path[len(path)-1]
	val, exists := parent.Get(last)
	if !exists {
		arr := NewTableArray()
		elem := NewTable(StateArrayTableElement)
		arr.AppendTable(elem)
		parent.bind(last, arr, pos)
		return elem, nil
	}
	entryPos, _ := parent.EntryPosition(last)
	arr, ok := val.(*Array)
	if !ok || arr.literalArray {
		if ok {
			return nil, fmt.Errorf("%s previously defined as a literal array at %s", renderPath(path), entryPos)
		}
		return nil, fmt.Errorf("%s is not an array (previously defined at %s)", renderPath(path), entryPos)
	}
	elem := NewTable(StateArrayTableElement)
	arr.AppendTable(elem)
	return elem, nil
}
