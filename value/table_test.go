package value

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/tomlforge/toml/internal/token"
)

func pos(line, col int) token.Position { return token.Position{Line: line, Column: col} }

func TestSetValueBindsLeafAndCreatesDottedIntermediates(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	err := SetValue(root, []string{"a", "b", "c"}, Integer(1), pos(1, 1))
	qt.Assert(t, qt.IsNil(err))

	a, ok := root.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	aTbl := a.(*Table)
	qt.Assert(t, qt.Equals(aTbl.State(), StateDottedIntermediate))

	b, ok := aTbl.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	bTbl := b.(*Table)
	c, ok := bTbl.Get("c")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, Value(Integer(1))))
}

func TestSetValueRejectsDuplicateLeaf(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"a"}, Integer(1), pos(1, 1))))
	err := SetValue(root, []string{"a"}, Integer(2), pos(2, 1))
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Error(), "a previously defined at line 1, column 1"))
}

func TestSetValueReusesDottedIntermediateForSiblingKeys(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"a", "b"}, Integer(1), pos(1, 1))))
	// "a" is now StateDottedIntermediate; a sibling dotted-key statement
	// reaching through it with a different final key must succeed.
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"a", "c"}, Integer(2), pos(2, 1))))

	a, ok := root.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	aTbl := a.(*Table)
	b, ok := aTbl.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, Value(Integer(1))))
	c, ok := aTbl.Get("c")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, Value(Integer(2))))
}

func TestDefineTablePromotesImplicitExactlyOnce(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	scope1, err := DefineTable(root, []string{"a", "b"}, pos(1, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(scope1.State(), StateExplicitHeader))

	a, _ := root.Get("a")
	qt.Assert(t, qt.Equals(a.(*Table).State(), StateImplicit))

	scope2, err := DefineTable(root, []string{"a"}, pos(3, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(scope2.State(), StateExplicitHeader))

	aPos, _ := root.EntryPosition("a")
	qt.Assert(t, qt.Equals(aPos, pos(3, 1)))

	_, err = DefineTable(root, []string{"a"}, pos(5, 1))
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Error(), "a previously defined at line 3, column 1"))
}

func TestDefineArrayTableAppendsElementsAndDescendsIntoCurrent(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	elem1, err := DefineArrayTable(root, []string{"fruit"}, pos(1, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(SetValue(elem1, []string{"name"}, String("apple"), pos(1, 1))))

	elem2, err := DefineArrayTable(root, []string{"fruit"}, pos(3, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(SetValue(elem2, []string{"name"}, String("banana"), pos(3, 1))))

	fruitVal, _ := root.Get("fruit")
	arr := fruitVal.(*Array)
	qt.Assert(t, qt.Equals(arr.Len(), 2))

	// A [fruit.color] header after the second [[fruit]] descends into
	// that element, not the first.
	scope, err := DefineTable(root, []string{"fruit", "color"}, pos(5, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(scope.State(), StateExplicitHeader))

	name2, _ := elem2.Get("name")
	qt.Assert(t, qt.Equals(name2, Value(String("banana"))))
	color, ok := elem2.Get("color")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(color.(*Table).State(), StateExplicitHeader))
}

func TestDefineArrayTableRejectsLiteralArrayAtSameKey(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"foo"}, NewLiteralArray(), pos(1, 1))))
	_, err := DefineArrayTable(root, []string{"foo"}, pos(2, 1))
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Error(), "foo previously defined as a literal array at line 1, column 1"))
}

func TestKeysReflectsSourceAppearanceOrder(t *testing.T) {
	root := NewTable(StateExplicitHeader)
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"z"}, Integer(1), pos(1, 1))))
	qt.Assert(t, qt.IsNil(SetValue(root, []string{"a"}, Integer(2), pos(2, 1))))
	if diff := cmp.Diff([]string{"z", "a"}, root.Keys()); diff != "" {
		t.Errorf("Keys() order mismatch (-want +got):\n%s", diff)
	}
}
