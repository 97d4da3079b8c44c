package value

// Array is a zero-indexed sequence of Value. An array is created either
// by a `[ ... ]` literal (literalArray, sealed against extension by
// `[[header]]`) or by one or more `[[header]]` occurrences (tableArray,
// extensible only by further headers of the same path). The two kinds
// are mutually exclusive for the lifetime of the array.
type Array struct {
	elems        []Value
	literalArray bool
	tableArray   bool
	// openIndex is the element index that a nested `[[header]]` or dotted
	// path currently addresses when it walks through this array. It is
	// only meaningful when tableArray is true, and always points at the
	// last appended element.
	openIndex int
}

// NewLiteralArray returns an empty array flagged as created from a `[ ... ]`
// literal.
func NewLiteralArray() *Array {
	return &Array{literalArray: true}
}

// NewTableArray returns an empty array flagged as an array-of-tables.
func NewTableArray() *Array {
	return &Array{tableArray: true, openIndex: -1}
}

// Kind implements Value.
func (*Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Get returns the element at i.
func (a *Array) Get(i int) Value { return a.elems[i] }

// Elements returns the array's elements in order. Callers must not
// mutate the returned slice.
func (a *Array) Elements() []Value { return a.elems }

// IsLiteralArray reports whether this array was created by a `[ ... ]`
// literal.
func (a *Array) IsLiteralArray() bool { return a.literalArray }

// IsTableArray reports whether this array was created by `[[header]]`
// occurrences.
func (a *Array) IsTableArray() bool { return a.tableArray }

// Append adds v as the new last element of a literal array.
func (a *Array) Append(v Value) { a.elems = append(a.elems, v) }

// AppendTable adds t as a new element of a table array and opens it as
// the current target for subsequent nested headers or assignments.
func (a *Array) AppendTable(t *Table) {
	a.elems = append(a.elems, t)
	a.openIndex = len(a.elems) - 1
}

// Current returns the table that is currently open for appended
// assignments in a table array, or nil if none has been appended yet.
func (a *Array) Current() *Table {
	if !a.tableArray || a.openIndex < 0 || a.openIndex >= len(a.elems) {
		return nil
	}
	t, _ := a.elems[a.openIndex].(*Table)
	return t
}
