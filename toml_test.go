package toml_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/tomlforge/toml"
	"github.com/tomlforge/toml/version"
)

func TestParseTypedGetters(t *testing.T) {
	r := toml.Parse("name = \"wrench\"\ncount = 7\nprice = 1.5\nok = true\nwhen = 1979-05-27\ntags = [\"a\", \"b\"]\n[meta]\nauthor = \"me\"\n")
	qt.Assert(t, qt.IsFalse(r.HasErrors()))

	name, err := r.GetString("name")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(name, "wrench"))

	count, err := r.GetLong("count")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(count, int64(7)))

	price, err := r.GetDouble("price")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(price, 1.5))

	ok, err := r.GetBoolean("ok")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(ok))

	when, err := r.GetLocalDate("when")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(when.Year, 1979))

	arr, err := r.GetArray("tags")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(arr.Len(), 2))

	author, err := r.GetString("meta.author")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(author, "me"))
}

func TestGetAbsentPathReturnsErrAbsent(t *testing.T) {
	r := toml.Parse("a = 1\n")
	_, err := r.GetString("b.c")
	qt.Assert(t, qt.ErrorIs(err, toml.ErrAbsent))
}

func TestGetWrongTypeReturnsDescriptiveError(t *testing.T) {
	r := toml.Parse("a = 1\n")
	_, err := r.GetString("a")
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.IsTrue(strings.Contains(err.Error(), "a is a integer, not a string")))
}

func TestWithVersionGatesDottedKeys(t *testing.T) {
	r := toml.Parse("a.b = 1\n", toml.WithVersion(version.V0_4_0))
	qt.Assert(t, qt.IsTrue(r.HasErrors()))
}

func TestParseBytesAndParseReader(t *testing.T) {
	r1 := toml.ParseBytes([]byte("a = 1\n"))
	qt.Assert(t, qt.IsFalse(r1.HasErrors()))

	r2, err := toml.ParseReader(strings.NewReader("a = 1\n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(r2.HasErrors()))
}

func TestEqualAndToJSONToTOML(t *testing.T) {
	r1 := toml.Parse("a = 1\n")
	r2 := toml.Parse("a = 1\n")
	qt.Assert(t, qt.IsTrue(toml.Equal(r1.Root(), r2.Root())))
	qt.Assert(t, qt.Equals(r1.ToJSON(), "{\n  \"a\" : 1\n}\n"))
	qt.Assert(t, qt.Equals(r1.ToTOML(), "a = 1\n"))
}

func TestErrorsListReportsRedefinitionPosition(t *testing.T) {
	r := toml.Parse("foo = 1\nfoo = 2\n")
	qt.Assert(t, qt.IsTrue(r.HasErrors()))
	errs := r.Errors()
	qt.Assert(t, qt.HasLen(errs, 1))
	qt.Assert(t, qt.IsTrue(strings.Contains(errs[0].Error(), "foo previously defined at line 1, column 1")))
}
