package value

// Equal implements spec.md §4.4's structural equality: same variant, same
// payload; tables compare as order-insensitive multisets of key->value
// pairs (table flags and positions are not part of the comparison);
// arrays compare elementwise (the literal/table-array distinction is not
// part of the comparison either — only the elements are).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Integer:
		return av == b.(Integer)
	case Float:
		return av == b.(Float)
	case Boolean:
		return av == b.(Boolean)
	case OffsetDateTime:
		return av == b.(OffsetDateTime)
	case LocalDateTime:
		return av == b.(LocalDateTime)
	case LocalDate:
		return av == b.(LocalDate)
	case LocalTime:
		return av == b.(LocalTime)
	case *Array:
		return arrayEqual(av, b.(*Array))
	case *Table:
		return tableEqual(av, b.(*Table))
	default:
		return false
	}
}

func arrayEqual(a, b *Array) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !Equal(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}

func tableEqual(a, b *Table) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}
